package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/configuration"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/hwmon"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initConfig starts from a clean viper instance, an empty cfgFile means no config file
func initConfig(cfgFile string) {
	viper.Reset()
	configuration.CurrentConfig = configuration.Configuration{}
	if cfgFile != "" {
		configuration.InitConfig(cfgFile)
	}
}

// execute runs the root command with args and returns what was written to
// the command output and to the terminal
func execute(t *testing.T, args ...string) (string, string, error) {
	var out bytes.Buffer
	var terminal bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	pterm.SetDefaultOutput(&terminal)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
		temperature = defaultTemperature
		global.NoColor = false
	})

	err := rootCmd.Execute()
	return out.String(), terminal.String(), err
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "50", formatValue(50))
	assert.Equal(t, "41.6667", formatValue(125.0/3.0))
	assert.Equal(t, "0", formatValue(0))
}

func TestRootCommandWithoutConfig(t *testing.T) {
	// GIVEN
	initConfig("")

	// WHEN
	out, _, err := execute(t)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "Recommended Fan Speed: 50\n", out)
}

func TestRootCommandTemperatureFlag(t *testing.T) {
	// GIVEN
	initConfig("")

	// WHEN
	out, _, err := execute(t, "-t", "45")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "Recommended Fan Speed: 75\n", out)
}

func TestRootCommandUsesConfigFile(t *testing.T) {
	// GIVEN
	initConfig("testdata/fuzzyfan.yaml")

	// WHEN
	out, _, err := execute(t, "--temperature", "28")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "Recommended Fan Speed: 60\n", out)
}

func TestEvaluateCommand(t *testing.T) {
	// GIVEN
	initConfig("")

	// WHEN
	_, terminal, err := execute(t, "evaluate", "28", "--no-color")

	// THEN
	require.NoError(t, err)
	assert.Contains(t, terminal, "Temperature: 28°C")
	assert.Contains(t, terminal, "neutral")
	assert.Contains(t, terminal, "Dominant term: medium")
	assert.Contains(t, terminal, "Recommended Fan Speed: 50")
	assert.NotContains(t, terminal, "%!")
}

func TestEvaluateCommandInvalidTemperature(t *testing.T) {
	// GIVEN
	initConfig("")

	// WHEN
	_, _, err := execute(t, "evaluate", "warm")

	// THEN
	assert.ErrorContains(t, err, "invalid temperature 'warm'")
}

func TestPlotCommandWithoutColor(t *testing.T) {
	// GIVEN
	initConfig("")

	// WHEN
	_, terminal, err := execute(t, "plot", "--no-color")

	// THEN
	require.NoError(t, err)
	assert.Contains(t, terminal, "membership of cold, 0..50°C")
	assert.Contains(t, terminal, "fan speed in % for 0..50°C")
	assert.NotContains(t, terminal, "%!")
}

func TestPlotWithoutColor(t *testing.T) {
	// GIVEN
	global.NoColor = true
	t.Cleanup(func() {
		global.NoColor = false
	})

	// WHEN
	var result string
	assert.NotPanics(t, func() {
		result = plot([][]float64{{0, 1}, {1, 0}}, 5, 0, 1, "caption", "upper", "lower")
	})

	// THEN
	assert.Contains(t, result, "caption")
	assert.NotContains(t, result, "upper")
}

func TestPlotWithColor(t *testing.T) {
	// WHEN
	result := plot([][]float64{{0, 1}, {1, 0}}, 5, 0, 1, "caption", "upper", "lower")

	// THEN
	assert.Contains(t, result, "upper")
	assert.Contains(t, result, "lower")
}

func TestTemperatureTermTable(t *testing.T) {
	// GIVEN
	evaluation := fuzzy.DefaultSystem().Evaluate(28)

	// WHEN
	result := temperatureTermTable(evaluation)

	// THEN
	require.Len(t, result.Rows, 3)
	assert.Equal(t, []string{"cold", "0", "0", "0", "slow"}, result.Rows[0])
	assert.Equal(t, []string{"neutral", "0.7", "0.4", "1", "medium"}, result.Rows[1])
}

func TestFanSpeedTermTable(t *testing.T) {
	// GIVEN
	system := fuzzy.DefaultSystem()
	evaluation := system.Evaluate(28)

	// WHEN
	result := fanSpeedTermTable(system, evaluation)

	// THEN
	assert.Equal(t, [][]string{
		{"slow", "25", "0"},
		{"medium", "50", "1"},
		{"fast", "75", "0"},
	}, result.Rows)
}

func TestTransferSeries(t *testing.T) {
	// GIVEN
	system := fuzzy.DefaultSystem()

	// WHEN
	result := transferSeries(system, []float64{5, 28, 45, 100})

	// THEN
	require.Len(t, result, 4)
	assert.InDelta(t, 25.0, result[0], 1e-9)
	assert.Equal(t, 50.0, result[1])
	assert.InDelta(t, 75.0, result[2], 1e-9)
	assert.Equal(t, 0.0, result[3])
}

func TestSensorTable(t *testing.T) {
	// GIVEN
	input := filepath.Join(t.TempDir(), "temp1_input")
	require.NoError(t, os.WriteFile(input, []byte("45500\n"), 0o644))
	chip := &hwmon.Chip{
		Name:     "k10temp",
		Platform: "k10temp-0000:00:18.3",
		TempInputs: map[int]*hwmon.TempInput{
			2: {Index: 2, Label: "Tccd1", Input: filepath.Join(t.TempDir(), "missing")},
			1: {Index: 1, Label: "Tctl", Input: input},
		},
	}

	// WHEN
	result := sensorTable(chip)

	// THEN
	assert.Equal(t, [][]string{
		{"", "1", "Tctl (temp1_input)", "45.5°C"},
		{"", "2", "Tccd1 (missing)", "N/A"},
	}, result.Rows)
}
