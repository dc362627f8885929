package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_served_total",
			Help: "Count of served recommendation requests by life stage and fallback path.",
		},
		[]string{"life_stage", "fallback"},
	)

	EventLogFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_event_log_failures_total",
			Help: "Count of recommendation audit events that failed to persist.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendServedTotal, EventLogFailuresTotal)
}
