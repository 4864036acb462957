package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the harness's Prometheus collectors.
type Metrics struct {
	runs       *prometheus.CounterVec
	mismatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	vertices   prometheus.Gauge
}

// NewMetrics registers the collectors on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bfsbench_runs_total",
			Help: "Engine runs by engine and outcome",
		}, []string{"engine", "outcome"}),
		mismatches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bfsbench_distance_mismatches_total",
			Help: "Runs whose distances differ from the reference engine",
		}, []string{"engine"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bfsbench_run_duration_seconds",
			Help:    "Engine run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}, []string{"engine"}),
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "bfsbench_case_vertices",
			Help: "Vertex count of the most recent case",
		}),
	}
}

func (m *Metrics) observe(t Timing) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case t.Err != nil:
		outcome = "error"
	case !t.Match:
		outcome = "mismatch"
		m.mismatches.WithLabelValues(t.Engine).Inc()
	}
	m.runs.WithLabelValues(t.Engine, outcome).Inc()
	m.duration.WithLabelValues(t.Engine).Observe(t.Duration.Seconds())
}

func (m *Metrics) setCase(vertices int) {
	if m == nil {
		return
	}
	m.vertices.Set(float64(vertices))
}
