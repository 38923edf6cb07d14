package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/hwmon"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/markusressel/fuzzyfan/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect temperature sensors",
	Long: `Detects all hwmon temperature inputs and prints them as a list.
Use the platform and index of an entry in a "hwmon" sensor definition.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chips, err := hwmon.GetChips(hwmon.DefaultBasePath)
		if err != nil {
			return fmt.Errorf("error detecting devices: %w", err)
		}
		if len(chips) <= 0 {
			ui.Warning("No hwmon temperature inputs found")
			return nil
		}

		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		for _, chip := range chips {
			ui.Printfln("> %s", chip.Platform)

			var buf bytes.Buffer
			if err := sensorTable(chip).WriteTable(&buf, tableConfig); err != nil {
				return fmt.Errorf("error printing table: %w", err)
			}
			ui.Printfln("%s", buf.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func sensorTable(chip *hwmon.Chip) table.Table {
	indices := make([]int, 0, len(chip.TempInputs))
	for k := range chip.TempInputs {
		indices = append(indices, k)
	}
	sort.Ints(indices)

	var rows [][]string
	for _, index := range indices {
		input := chip.TempInputs[index]
		valueText := "N/A"
		if value, err := util.ReadIntFromFile(input.Input); err == nil {
			valueText = fmt.Sprintf("%s°C", formatValue(float64(value)/1000))
		}

		_, file := filepath.Split(input.Input)
		rows = append(rows, []string{
			"", strconv.Itoa(index), fmt.Sprintf("%s (%s)", input.Label, file), valueText,
		})
	}
	return table.Table{
		Headers: []string{"Sensors", "Index", "Label", "Value"},
		Rows:    rows,
	}
}
