package config

import (
	"fmt"

	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/spf13/cobra"
)

var daemon bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath, err := configuration.ReadConfigFile()
		if err != nil {
			return err
		}
		ui.Info("Using configuration file at: %s", configPath)
		if err = configuration.LoadConfig(); err != nil {
			return err
		}

		if daemon {
			err = configuration.ValidateDaemon()
		} else {
			err = configuration.Validate()
		}
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&daemon, "daemon", "d", false, "Also check the settings required by 'serve'")
	Command.AddCommand(validateCmd)
}
