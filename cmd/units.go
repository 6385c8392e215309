package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/unitconv-cli/unitconv/style"
	"github.com/unitconv-cli/unitconv/unit"
)

func init() {
	rootCmd.AddCommand(unitsCmd)

	unitsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	unitsCmd.SetOut(os.Stdout)
}

// unitsCmd lists the categories and the units they contain.
var unitsCmd = &cobra.Command{
	Use:       "units [category]",
	Short:     "List the supported categories and their units",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: unit.CategoryNames(),
	Run: func(cmd *cobra.Command, args []string) {
		categories := unit.Categories()
		if len(args) == 1 {
			category, err := unit.ParseCategory(args[0])
			handleErr(err)
			categories = []unit.Category{category}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			units := lo.SliceToMap(categories, func(c unit.Category) (string, []string) {
				return c.String(), unit.Units(c)
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(units))
			return
		}

		for i, category := range categories {
			cmd.Println(style.Category(category))

			base, _ := unit.Base(category)
			for _, name := range unit.Units(category) {
				if name == base {
					cmd.Printf("  %s %s\n", name, style.Faint("(base)"))
				} else {
					cmd.Printf("  %s\n", name)
				}
			}

			if i < len(categories)-1 {
				cmd.Println()
			}
		}
	},
}
