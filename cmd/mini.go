package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/unitconv-cli/unitconv/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("once", "o", false, "Exit after a single conversion")
}

// miniCmd runs the conversion as a sequence of prompts.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Convert through a sequence of prompts instead of the full-screen form",
	Long:  `Ask for the category, value and units one prompt at a time and print the result line.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Out:  cmd.OutOrStdout(),
			Once: lo.Must(cmd.Flags().GetBool("once")),
		}

		handleErr(mini.Run(&options))
	},
}
