package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <temperature>",
	Short: "Print all intermediate values of an evaluation",
	Long: `Evaluates the fuzzy system for the given temperature in degrees celsius and
prints the membership interval of every temperature term, the activation of
every fan speed term and the resulting fan speed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temperature, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid temperature '%s': %w", args[0], err)
		}

		system, err := global.LoadSystem(false)
		if err != nil {
			return err
		}

		evaluation := system.Evaluate(temperature)

		ui.Printfln("Temperature: %s°C", formatValue(evaluation.Temperature))
		if err = printTable(temperatureTermTable(evaluation)); err != nil {
			return err
		}
		if err = printTable(fanSpeedTermTable(system, evaluation)); err != nil {
			return err
		}

		if term, ok := evaluation.Activations.Dominant(); ok {
			ui.Printfln("Dominant term: %s", term)
		} else {
			ui.Warning("Temperature activates no rule")
		}
		ui.Printfln("Recommended Fan Speed: %s", formatValue(evaluation.FanSpeed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func formatValue(value float64) string {
	return fmt.Sprintf("%.6g", value)
}

func temperatureTermTable(evaluation fuzzy.Evaluation) table.Table {
	var rows [][]string
	for _, term := range fuzzy.TemperatureTerms() {
		interval := evaluation.Intervals[term]
		rows = append(rows, []string{
			term.String(),
			formatValue(evaluation.Memberships[term]),
			formatValue(interval.Lower),
			formatValue(interval.Upper),
			fuzzy.Rules[term].String(),
		})
	}
	return table.Table{
		Headers: []string{"Temperature", "Membership", "Lower", "Upper", "Fan Speed"},
		Rows:    rows,
	}
}

func fanSpeedTermTable(system fuzzy.System, evaluation fuzzy.Evaluation) table.Table {
	var rows [][]string
	for _, term := range fuzzy.FanSpeedTerms() {
		rows = append(rows, []string{
			term.String(),
			formatValue(system.FanSpeedSet(term).Midpoint()),
			formatValue(evaluation.Activations[term]),
		})
	}
	return table.Table{
		Headers: []string{"Fan Speed", "Midpoint", "Activation"},
		Rows:    rows,
	}
}

func printTable(tab table.Table) error {
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if err != nil {
		return err
	}
	ui.Printfln("%s", buf.String())
	return nil
}
