package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_requests_total",
			Help: "Count of recommendation requests by outcome (primary, fallback, sentinel).",
		},
		[]string{"outcome"},
	)

	EstimatorFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_estimator_failures_total",
			Help: "Count of per-row fit estimation failures recovered as zero fit.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendRequestsTotal, EstimatorFailuresTotal)
}
