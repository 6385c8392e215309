package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/unitconv-cli/unitconv/filesystem"
	"github.com/unitconv-cli/unitconv/inline"
	"github.com/unitconv-cli/unitconv/unit"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("category", "c", "", "Category of the units, inferred from them when omitted")
	convertCmd.Flags().StringP("from", "f", "", "Unit to convert from (name, plural or symbol)")
	convertCmd.Flags().StringP("to", "t", "", "Unit to convert to (name, plural or symbol)")
	convertCmd.Flags().StringP("value", "V", "", "Value to convert, useful for negative numbers")
	convertCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	convertCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(convertCmd.MarkFlagRequired("from"))
	lo.Must0(convertCmd.MarkFlagRequired("to"))

	lo.Must0(convertCmd.RegisterFlagCompletionFunc("category", completionCategories))
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("from", completionUnits))
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", completionUnits))
}

// convertCmd performs a single conversion without any interaction.
var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert a value between two units and print the result",
	Long: `Convert a value between two units without opening the form.

Units are matched ignoring case and may be given as plurals or symbols,
e.g. "km", "kilometers" and "Kilometer" are the same unit.
When --category is omitted it is inferred from the units.`,
	Example: `  unitconv convert 5 --from km --to mi
  unitconv convert --value -40 --from C --to F
  unitconv convert 90 -f min -t hour --json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetString("value"))
		if len(args) == 1 {
			if raw != "" {
				handleErr(errors.New("value given both as an argument and with --value"))
			}
			raw = args[0]
		}

		value, err := inline.ParseValue(raw)
		handleErr(err)

		category := mo.None[unit.Category]()
		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			c, err := unit.ParseCategory(name)
			handleErr(err)
			category = mo.Some(c)
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		options := &inline.Options{
			Out:      writer,
			Category: category,
			Value:    value,
			From:     lo.Must(cmd.Flags().GetString("from")),
			To:       lo.Must(cmd.Flags().GetString("to")),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}

func completionUnits(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if name, _ := cmd.Flags().GetString("category"); name != "" {
		if category, err := unit.ParseCategory(name); err == nil {
			return unit.Suggest(category, toComplete), cobra.ShellCompDirectiveNoFileComp
		}
	}

	return unit.SuggestAny(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	convertCmd.AddCommand(convertSchemaCmd)
}

// convertSchemaCmd prints the JSON schema of the --json output.
var convertSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the convert command output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
