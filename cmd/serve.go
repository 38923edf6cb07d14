package cmd

import (
	"fmt"

	"github.com/markusressel/fuzzyfan/internal"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run fuzzyfan as a daemon",
	Long: `Periodically reads the configured temperature sensors, evaluates the fuzzy
system for each controller and writes the recommended fan speed to its outputs.
Optionally serves a REST api and prometheus metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader()

		configPath, err := configuration.ReadConfigFile()
		if err != nil {
			return err
		}
		ui.Info("Using configuration file at: %s", configPath)

		if err = configuration.LoadConfig(); err != nil {
			return err
		}
		if err = configuration.ValidateDaemon(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		system, err := configuration.CurrentConfig.System.ToSystem()
		if err != nil {
			return err
		}

		return internal.RunDaemon(system)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
