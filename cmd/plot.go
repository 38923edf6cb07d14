package cmd

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/fuzzyfan/cmd/global"
	"github.com/markusressel/fuzzyfan/internal/fuzzy"
	"github.com/markusressel/fuzzyfan/internal/ui"
	"github.com/markusressel/fuzzyfan/internal/util"
	"github.com/spf13/cobra"
)

const plotSamples = 101

var (
	plotFrom float64
	plotTo   float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the membership functions and the transfer curve",
	Long: `Plots crisp, upper and lower membership of every temperature term
and the resulting fan speed over a range of temperatures.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotFrom >= plotTo {
			return fmt.Errorf("invalid range: --from (%v) must be less than --to (%v)", plotFrom, plotTo)
		}

		system, err := global.LoadSystem(false)
		if err != nil {
			return err
		}

		temperatures := util.Linspace(plotFrom, plotTo, plotSamples)

		for idx, term := range fuzzy.TemperatureTerms() {
			if idx > 0 {
				ui.Printfln("")
			}
			crisp, upper, lower := membershipSeries(system, term, temperatures)
			caption := fmt.Sprintf("membership of %s, %v..%v°C", term, plotFrom, plotTo)
			ui.Printfln("%s", plot([][]float64{upper, crisp, lower}, 10, 0, 1, caption, "upper", "crisp", "lower"))
		}

		ui.Printfln("")
		caption := fmt.Sprintf("fan speed in %% for %v..%v°C", plotFrom, plotTo)
		ui.Printfln("%s", plot([][]float64{transferSeries(system, temperatures)}, 15, 0, 100, caption, "fan speed"))
		return nil
	},
}

func init() {
	plotCmd.Flags().Float64VarP(&plotFrom, "from", "", 0, "Lowest temperature to plot")
	plotCmd.Flags().Float64VarP(&plotTo, "to", "", 50, "Highest temperature to plot")
	rootCmd.AddCommand(plotCmd)
}

func membershipSeries(system fuzzy.System, term fuzzy.TemperatureTerm, temperatures []float64) (crisp, upper, lower []float64) {
	for _, t := range temperatures {
		interval := system.IntervalMembership(t, term)
		crisp = append(crisp, system.Membership(t, term))
		upper = append(upper, interval.Upper)
		lower = append(lower, interval.Lower)
	}
	return crisp, upper, lower
}

func transferSeries(system fuzzy.System, temperatures []float64) []float64 {
	result := make([]float64, 0, len(temperatures))
	for _, t := range temperatures {
		result = append(result, system.Run(t))
	}
	return result
}

func plot(series [][]float64, height int, lowerBound, upperBound float64, caption string, legends ...string) string {
	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(100),
		asciigraph.LowerBound(lowerBound),
		asciigraph.UpperBound(upperBound),
		asciigraph.Caption(caption),
	}
	// legends are drawn in the series color, they need one color per legend
	if !global.NoColor {
		options = append(options,
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.White, asciigraph.Blue),
			asciigraph.SeriesLegends(legends...),
		)
	}
	return asciigraph.PlotMany(series, options...)
}
