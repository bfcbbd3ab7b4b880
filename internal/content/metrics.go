package content

import "github.com/prometheus/client_golang/prometheus"

var seededTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "content_seeded_total",
		Help: "Number of times an empty content collection was populated with demo entries.",
	},
	[]string{"kind"},
)

// RegisterMetrics registers the content collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(seededTotal)
}
