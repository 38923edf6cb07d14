package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "fuzzyfan"
)

// Register adds all given collectors to the registerer
func Register(registerer prometheus.Registerer, collectors ...prometheus.Collector) {
	registerer.MustRegister(collectors...)
}
