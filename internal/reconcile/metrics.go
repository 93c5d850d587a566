package reconcile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the outcome of reconcile passes. Each instance owns its
// registry so a one-shot run can write just its own samples to a
// node-exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	reconcileTotal    *prometheus.CounterVec
	objectsApplied    *prometheus.CounterVec
	reconcileDuration prometheus.Histogram
	lastSuccess       prometheus.Gauge
}

// NewMetrics creates and registers the pass metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reconcileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "routerctl",
				Name:      "reconcile_total",
				Help:      "Total number of reconcile passes by mode and result",
			},
			[]string{"mode", "result"},
		),
		objectsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "routerctl",
				Name:      "objects_applied_total",
				Help:      "Total number of cluster objects applied by kind",
			},
			[]string{"kind"},
		),
		reconcileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "routerctl",
				Name:      "reconcile_duration_seconds",
				Help:      "Duration of a reconcile pass in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "routerctl",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful reconcile pass",
			},
		),
	}

	m.registry.MustRegister(
		m.reconcileTotal,
		m.objectsApplied,
		m.reconcileDuration,
		m.lastSuccess,
	)
	return m
}

// WriteTextfile writes the current samples in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) recordApplied(kind Kind) {
	if m == nil {
		return
	}
	m.objectsApplied.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) recordPass(modeName string, duration time.Duration, err error, now time.Time) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.reconcileTotal.WithLabelValues(modeName, result).Inc()
	m.reconcileDuration.Observe(duration.Seconds())
	if err == nil {
		m.lastSuccess.Set(float64(now.Unix()))
	}
}
