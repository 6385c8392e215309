package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/unitconv-cli/unitconv/color"
	"github.com/unitconv-cli/unitconv/constant"
	"github.com/unitconv-cli/unitconv/style"
	"github.com/unitconv-cli/unitconv/unit"
)

type buildInfo struct {
	App        string `json:"app"`
	Version    string `json:"version"`
	Revision   string `json:"revision"`
	BuiltAt    string `json:"builtAt"`
	BuiltBy    string `json:"builtBy"`
	Platform   string `json:"platform"`
	Categories int    `json:"categories"`
	Units      int    `json:"units"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		App:        constant.App,
		Version:    constant.Version,
		Revision:   constant.Revision,
		BuiltAt:    strings.TrimSpace(constant.BuiltAt),
		BuiltBy:    constant.BuiltBy,
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Categories: len(unit.Categories()),
		Units: lo.SumBy(unit.Categories(), func(c unit.Category) int {
			return len(unit.Units(c))
		}),
	}
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .Platform }}
  {{ faint "Units" }}        {{ bold (printf "%d in %d categories" .Units .Categories) }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	versionCmd.Flags().BoolP("json", "j", false, "Format the build metadata as a JSON object")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := currentBuildInfo()
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
