package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/fuzzyfan/cmd/config"
	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const defaultTemperature = 28.0

var temperature float64

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fuzzyfan",
	Short: "Recommends a fan speed for a temperature using an interval type-2 fuzzy system.",
	Long: `fuzzyfan maps a temperature in degrees celsius to a fan speed in percent
using an interval type-2 fuzzy system. Without a subcommand it evaluates
a single temperature and prints the recommended fan speed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupUi()
	},
	// this is the default command to run when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := global.LoadSystem(false)
		if err != nil {
			return err
		}

		speed := system.Run(temperature)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recommended Fan Speed: %.6g\n", speed)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is ./fuzzyfan.yaml, $HOME/fuzzyfan.yaml or /etc/fuzzyfan/fuzzyfan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.Flags().Float64VarP(&temperature, "temperature", "t", defaultTemperature, "Temperature in degrees celsius")

	rootCmd.AddCommand(config.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fuzzy", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fuzzyfan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
