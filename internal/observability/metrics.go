package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	requestsTotal     *prometheus.CounterVec
	latencySeconds    *prometheus.HistogramVec
	errorsTotal       *prometheus.CounterVec
	loginFailuresOnce sync.Once
	loginFailures     *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal)
	})
}

// Requests exposes the request counter.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the error counter.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// LoginFailures counts rejected login attempts by reason.
func LoginFailures() *prometheus.CounterVec {
	loginFailuresOnce.Do(func() {
		loginFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Total number of rejected login attempts.",
		}, []string{"reason"})
		prometheus.MustRegister(loginFailures)
	})
	return loginFailures
}
