// Package metrics owns the Prometheus collectors the bot updates.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the process counters on their own registry, so tests
// can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	Updates    *prometheus.CounterVec
	Transforms *prometheus.CounterVec
	RelayPosts *prometheus.CounterVec
}

// New returns a Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stylet",
				Name:      "updates_total",
				Help:      "Updates handled, by kind.",
			},
			[]string{"kind"},
		),
		Transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stylet",
				Name:      "transforms_total",
				Help:      "Variant transforms applied, by variant code.",
			},
			[]string{"variant"},
		),
		RelayPosts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stylet",
				Name:      "relay_posts_total",
				Help:      "Relay deliveries, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(m.Updates, m.Transforms, m.RelayPosts)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
