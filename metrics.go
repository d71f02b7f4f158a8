package crdesc

import (
	"time"

	"github.com/LdDl/crdesc/realizer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors of the generator
type Metrics struct {
	GenerationsTotal         *prometheus.CounterVec
	GenerationDuration       prometheus.Histogram
	BranchesDescribedTotal   prometheus.Counter
	CrosswalksDescribedTotal prometheus.Counter
	registry                 *prometheus.Registry
}

// NewMetrics creates collectors registered in a new Prometheus registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
	}
	m.GenerationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "crdesc_generations_total",
			Help: "Total number of description generations",
		},
		[]string{"language", "result"},
	)
	m.GenerationDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crdesc_generation_duration_seconds",
			Help:    "Description generation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
	m.BranchesDescribedTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "crdesc_branches_described_total",
			Help: "Total number of described branches",
		},
	)
	m.CrosswalksDescribedTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "crdesc_crosswalks_described_total",
			Help: "Total number of described crosswalks",
		},
	)
	return m
}

// Registry returns the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile dumps metrics in the text exposition format
func (m *Metrics) WriteToTextfile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, m.registry)
}

// observe records single generation call. Nil metrics are no-op.
func (m *Metrics) observe(lang realizer.Language, description *Description, err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.GenerationsTotal.WithLabelValues(string(lang), result).Inc()
	m.GenerationDuration.Observe(duration.Seconds())
	if description != nil {
		m.BranchesDescribedTotal.Add(float64(len(description.Branches)))
		m.CrosswalksDescribedTotal.Add(float64(len(description.Crosswalks)))
	}
}
