package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of API handlers by route and status
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "credit_http_request_duration_seconds",
		Help:    "Latency of credit API handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// Total number of API requests served
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_http_requests_total",
		Help: "Total number of credit API requests",
	}, []string{"method", "route", "status"})

	// Cache lookups of the prediction cache by result (hit, miss, error)
	PredictionCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_prediction_cache_lookups_total",
		Help: "Prediction cache lookups by result",
	}, []string{"result"})
)

var once sync.Once

// Init registers the collectors once per process.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestDuration,
			HTTPRequestsTotal,
			PredictionCacheLookups,
		)
	})
}
