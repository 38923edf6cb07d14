package cmd

import (
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/spf13/cobra"
)

// set at build time via -ldflags "-X github.com/markusressel/fuzzyfan/cmd.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fuzzyfan",
	Long:  `All software has versions. This is fuzzyfan's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
