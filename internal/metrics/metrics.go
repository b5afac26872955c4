// Package metrics exposes Prometheus instrumentation for orthoserve.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all orthoserve metrics on a dedicated Prometheus registry
// so independent server instances never collide.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	ComputeDuration *prometheus.HistogramVec
	InputVectors    prometheus.Histogram
	RankDeficient   prometheus.Counter
	InvalidInputs   *prometheus.CounterVec
}

// NewRegistry creates and registers all orthoserve metrics.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthoserve_requests_total",
				Help: "Total HTTP requests by endpoint and status code",
			},
			[]string{"endpoint", "status"},
		),

		ComputeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orthoserve_compute_duration_seconds",
				Help:    "Duration of orthonormalization and check runs in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation"},
		),

		InputVectors: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orthoserve_input_vectors",
				Help:    "Number of vectors per compute request",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512},
			},
		),

		RankDeficient: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orthoserve_rank_deficient_total",
				Help: "Total orthonormalization results with rank below the input count",
			},
		),

		InvalidInputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orthoserve_invalid_inputs_total",
				Help: "Total rejected requests by rejection reason",
			},
			[]string{"reason"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.ComputeDuration,
		r.InputVectors,
		r.RankDeficient,
		r.InvalidInputs,
	)

	return r
}

// Handler returns the Prometheus scrape handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveCompute records the duration of one compute run.
func (r *Registry) ObserveCompute(operation string, start time.Time) {
	r.ComputeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
