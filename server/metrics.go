package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ============================================================================
// Prometheus Metrics
// ============================================================================

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verdex",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served by route and status code",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verdex",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency by route",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})

	catalogPlants = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "verdex",
		Subsystem: "catalog",
		Name:      "plants",
		Help:      "Plants in the loaded catalog",
	})

	defaultClusterK = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "verdex",
		Subsystem: "engine",
		Name:      "default_cluster_k",
		Help:      "k used for the precomputed cluster run",
	})
)
