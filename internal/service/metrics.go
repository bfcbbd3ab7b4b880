package service

import "github.com/prometheus/client_golang/prometheus"

var submissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "submissions_total",
		Help: "Form submissions by kind and outcome.",
	},
	[]string{"kind", "status"},
)

// RegisterMetrics registers the service collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(submissionsTotal)
}
