// Package cmd implements the command-line interface for unitconv.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/color"
	"github.com/unitconv-cli/unitconv/constant"
	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/log"
	"github.com/unitconv-cli/unitconv/style"
	"github.com/unitconv-cli/unitconv/theme"
	"github.com/unitconv-cli/unitconv/tui"
	"github.com/unitconv-cli/unitconv/unit"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("theme", "t", "", "Open the form with the given theme (light or dark)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Modes(), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("category", "c", "", "Open the form on the given category")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("category", completionCategories))
}

// rootCmd opens the interactive conversion form.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Convert length, weight, temperature and time units in the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Convert between different units of measurement"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Theme:    mo.None[theme.Mode](),
			Category: mo.None[unit.Category](),
		}

		if name := lo.Must(cmd.Flags().GetString("theme")); name != "" {
			mode, err := theme.ParseMode(name)
			handleErr(err)
			options.Theme = mo.Some(mode)
		}

		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			category, err := unit.ParseCategory(name)
			handleErr(err)
			options.Category = mo.Some(category)
		}

		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func completionCategories(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Filter(unit.CategoryNames(), func(name string, _ int) bool {
		return strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete))
	}), cobra.ShellCompDirectiveNoFileComp
}
