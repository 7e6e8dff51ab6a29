// Package metrics exposes Prometheus counters for token issuance and
// authentication outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeIssued    = "issued"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"

	OutcomeFound   = "found"
	OutcomeMissing = "missing"
)

// TokenMetrics holds the collectors updated by the token service
type TokenMetrics struct {
	registry *prometheus.Registry

	issued        *prometheus.CounterVec
	authenticated *prometheus.CounterVec
	collisions    prometheus.Counter
}

// NewTokenMetrics creates the collectors and registers them on a private registry
func NewTokenMetrics() *TokenMetrics {
	m := &TokenMetrics{registry: prometheus.NewRegistry()}

	m.issued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "token_auth",
		Subsystem: "tokens",
		Name:      "issue_total",
		Help:      "Token issuance attempts by outcome",
	}, []string{"outcome"})

	m.authenticated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "token_auth",
		Subsystem: "tokens",
		Name:      "authenticate_total",
		Help:      "Token authentication attempts by outcome",
	}, []string{"outcome"})

	m.collisions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "token_auth",
		Subsystem: "tokens",
		Name:      "collisions_total",
		Help:      "Generated token values rejected by the unique index",
	})

	m.registry.MustRegister(
		m.issued,
		m.authenticated,
		m.collisions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveIssue counts one issuance attempt. A nil receiver is a no-op.
func (m *TokenMetrics) ObserveIssue(outcome string) {
	if m == nil {
		return
	}
	m.issued.WithLabelValues(outcome).Inc()
}

// ObserveAuthenticate counts one authentication attempt. A nil receiver is a no-op.
func (m *TokenMetrics) ObserveAuthenticate(outcome string) {
	if m == nil {
		return
	}
	m.authenticated.WithLabelValues(outcome).Inc()
}

// ObserveCollision counts a regenerated token. A nil receiver is a no-op.
func (m *TokenMetrics) ObserveCollision() {
	if m == nil {
		return
	}
	m.collisions.Inc()
}

// Registry exposes the underlying registry for tests and custom handlers
func (m *TokenMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *TokenMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
