// Package metrics collects matching statistics in a Prometheus registry and
// writes them out in the text exposition format, suitable for the node
// exporter textfile collector.
package metrics

import (
	"time"

	"github.com/khrees2412/labyrinth/internal/matcher"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "labyrinth"

// Metrics implements matcher.Recorder
type Metrics struct {
	registry   *prometheus.Registry
	passes     *prometheus.CounterVec
	candidates *prometheus.CounterVec
	matches    *prometheus.CounterVec
	boosted    *prometheus.CounterVec
	scores     *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

var _ matcher.Recorder = (*Metrics)(nil)

// New registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_passes_total",
			Help:      "Number of ranking passes run.",
		}, []string{"direction"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_scored_total",
			Help:      "Number of candidate pairs scored.",
		}, []string{"direction"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_returned_total",
			Help:      "Number of matches above threshold returned.",
		}, []string{"direction"}),
		boosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interest_boosts_total",
			Help:      "Number of matches raised by an expressed interest.",
		}, []string{"direction"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Distribution of pair scores before thresholding.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}, []string{"direction"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_duration_seconds",
			Help:      "Wall time of a ranking pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"direction"}),
	}
	m.registry.MustRegister(m.passes, m.candidates, m.matches, m.boosted, m.scores, m.duration)
	return m
}

// ObservePass records the outcome of one ranking pass
func (m *Metrics) ObservePass(d matcher.Direction, candidates, kept, boosted int, elapsed time.Duration) {
	dir := d.String()
	m.passes.WithLabelValues(dir).Inc()
	m.candidates.WithLabelValues(dir).Add(float64(candidates))
	m.matches.WithLabelValues(dir).Add(float64(kept))
	m.boosted.WithLabelValues(dir).Add(float64(boosted))
	m.duration.WithLabelValues(dir).Observe(elapsed.Seconds())
}

// ObserveScore records a single pair score
func (m *Metrics) ObserveScore(d matcher.Direction, score float64) {
	m.scores.WithLabelValues(d.String()).Observe(score)
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile atomically writes all metrics to path. An empty path is a no-op.
func (m *Metrics) WriteFile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
