package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the sign-in shell
type Metrics struct {
	SignInAttempts  *prometheus.CounterVec
	SignOuts        *prometheus.CounterVec
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SignInAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signin_attempts_total",
				Help: "Sign-in attempts by outcome.",
			},
			[]string{"outcome"},
		),
		SignOuts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signout_total",
				Help: "Sign-outs by outcome.",
			},
			[]string{"outcome"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"code", "method", "path"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of latencies for HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"code", "method", "path"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.SignInAttempts, m.SignOuts, m.RequestsTotal, m.RequestDuration)
	return m
}

// RecordSignIn counts a sign-in attempt
func (m *Metrics) RecordSignIn(outcome string) {
	m.SignInAttempts.WithLabelValues(outcome).Inc()
}

// RecordSignOut counts a sign-out
func (m *Metrics) RecordSignOut(outcome string) {
	m.SignOuts.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
