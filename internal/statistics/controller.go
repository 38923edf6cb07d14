package statistics

import (
	"github.com/markusressel/fuzzyfan/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.FuzzyController

	output              *prometheus.Desc
	outputAvg           *prometheus.Desc
	evaluationCount     *prometheus.Desc
	zeroActivationCount *prometheus.Desc
	outputErrorCount    *prometheus.Desc
}

func NewControllerCollector(controllers []controller.FuzzyController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		output: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "output"),
			"Last recommended fan speed of this controller in percent",
			[]string{"id"}, nil,
		),
		outputAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "output_avg"),
			"Average of the most recent fan speeds recommended by this controller",
			[]string{"id"}, nil,
		),
		evaluationCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "evaluation_count"),
			"Counter for evaluations of the fuzzy system by this controller",
			[]string{"id"}, nil,
		),
		zeroActivationCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "zero_activation_count"),
			"Counter for evaluations where the temperature did not activate any rule",
			[]string{"id"}, nil,
		),
		outputErrorCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "output_error_count"),
			"Counter for failed writes to the outputs of this controller",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.output
	ch <- collector.outputAvg
	ch <- collector.evaluationCount
	ch <- collector.zeroActivationCount
	ch <- collector.outputErrorCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		id := contr.GetId()
		stats := contr.GetStatistics()
		ch <- prometheus.MustNewConstMetric(collector.output, prometheus.GaugeValue, stats.LastOutput, id)
		ch <- prometheus.MustNewConstMetric(collector.outputAvg, prometheus.GaugeValue, stats.OutputAvg, id)
		ch <- prometheus.MustNewConstMetric(collector.evaluationCount, prometheus.CounterValue, float64(stats.EvaluationCount), id)
		ch <- prometheus.MustNewConstMetric(collector.zeroActivationCount, prometheus.CounterValue, float64(stats.ZeroActivationCount), id)
		ch <- prometheus.MustNewConstMetric(collector.outputErrorCount, prometheus.CounterValue, float64(stats.OutputErrorCount), id)
	}
}
