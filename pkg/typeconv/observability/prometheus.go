package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements MetricsRecorder with Prometheus collectors.
type PrometheusMetrics struct {
	Selections     *prometheus.CounterVec
	ResolveLatency prometheus.Histogram
	Ambiguous      *prometheus.CounterVec
	CacheCapacity  prometheus.Gauge
}

var _ MetricsRecorder = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the typeconv collectors and registers them
// with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typeconv_select_total",
			Help: "Total number of converter selections by cache result",
		}, []string{"result"}),
		ResolveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "typeconv_resolve_duration_seconds",
			Help:    "Cold-path converter resolution latency",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		Ambiguous: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typeconv_resolve_ambiguous_total",
			Help: "Total number of resolutions that failed with an ambiguous match",
		}, []string{"type"}),
		CacheCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "typeconv_cache_capacity",
			Help: "Capacity of the most recently grown resolver cache",
		}),
	}

	for _, c := range []prometheus.Collector{m.Selections, m.ResolveLatency, m.Ambiguous, m.CacheCapacity} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordSelect increments typeconv_select_total{result="hit"|"miss"}.
func (m *PrometheusMetrics) RecordSelect(_ context.Context, hit bool) {
	if hit {
		m.Selections.WithLabelValues("hit").Inc()
		return
	}
	m.Selections.WithLabelValues("miss").Inc()
}

// RecordResolve observes resolution latency and counts ambiguous matches.
func (m *PrometheusMetrics) RecordResolve(_ context.Context, typeName string, duration time.Duration, err error) {
	m.ResolveLatency.Observe(duration.Seconds())
	if err != nil {
		m.Ambiguous.WithLabelValues(typeName).Inc()
	}
}

// RecordCacheGrow sets the cache capacity gauge.
func (m *PrometheusMetrics) RecordCacheGrow(_ context.Context, capacity int) {
	m.CacheCapacity.Set(float64(capacity))
}
