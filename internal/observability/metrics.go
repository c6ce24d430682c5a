package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shorex",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "API requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shorex",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	planGenerationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shorex",
		Subsystem: "plans",
		Name:      "generation_total",
		Help:      "Plan generation attempts by outcome.",
	}, []string{"outcome"})
	planGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shorex",
		Subsystem: "plans",
		Name:      "generation_duration_seconds",
		Help:      "End-to-end plan generation latency, including the AI call.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
	})
)

func init() {
	prometheus.MustRegister(
		requestCounter,
		requestDuration,
		planGenerationCounter,
		planGenerationDuration,
	)
}

// RecordRequest counts an API request and observes its latency. Route is the
// registered route template, not the raw path, so path parameters do not
// explode the label cardinality.
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordPlanGeneration tracks one plan generation attempt.
func RecordPlanGeneration(outcome string, elapsed time.Duration) {
	planGenerationCounter.WithLabelValues(outcome).Inc()
	planGenerationDuration.Observe(elapsed.Seconds())
}
