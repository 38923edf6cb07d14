package config

import (
	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective fuzzy system",
	Long: `Prints the term definitions of the fuzzy system as YAML, including all defaults
that are not overridden by the configuration file. The output can be used as
the "system" section of a configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := global.LoadSystem(false)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(map[string]configuration.SystemConfig{
			"system": configuration.SystemConfigFrom(system),
		})
		if err != nil {
			return err
		}
		ui.Printf("%s", out)
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
