//go:generate mockgen -source=metrics.go -destination=mocks/mocks.go -package=mocks MetricsRecorder

package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records converter resolution metrics.
// Use NewMetricsRecorder() for OTel metrics, NewPrometheusMetrics() for a
// Prometheus registry, or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSelect records a selection and whether the resolver cache served it.
	RecordSelect(ctx context.Context, hit bool)

	// RecordResolve records a cold-path resolution of typeName.
	// err is non-nil when the resolution was ambiguous.
	RecordResolve(ctx context.Context, typeName string, duration time.Duration, err error)

	// RecordCacheGrow records the new capacity of a resolver cache after doubling.
	RecordCacheGrow(ctx context.Context, capacity int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	hits           metric.Int64Counter
	misses         metric.Int64Counter
	resolveLatency metric.Float64Histogram
	ambiguous      metric.Int64Counter
	cacheCapacity  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typeconv")

	hits, err := meter.Int64Counter("typeconv.select.hits",
		metric.WithDescription("Selections served by the resolver cache"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter("typeconv.select.misses",
		metric.WithDescription("Selections that required a full resolution"),
	)
	if err != nil {
		return nil, err
	}

	resolveLatency, err := meter.Float64Histogram("typeconv.resolve.latency_ms",
		metric.WithDescription("Cold-path resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	ambiguous, err := meter.Int64Counter("typeconv.resolve.ambiguous",
		metric.WithDescription("Resolutions that failed with an ambiguous match"),
	)
	if err != nil {
		return nil, err
	}

	cacheCapacity, err := meter.Int64Histogram("typeconv.cache.capacity",
		metric.WithDescription("Resolver cache capacity after growth"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		hits:           hits,
		misses:         misses,
		resolveLatency: resolveLatency,
		ambiguous:      ambiguous,
		cacheCapacity:  cacheCapacity,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSelect records a selection.
func (m *otelMetrics) RecordSelect(ctx context.Context, hit bool) {
	if hit {
		m.hits.Add(ctx, 1)
		return
	}
	m.misses.Add(ctx, 1)
}

// RecordResolve records a cold-path resolution.
func (m *otelMetrics) RecordResolve(ctx context.Context, typeName string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("type", typeName))
	m.resolveLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		m.ambiguous.Add(ctx, 1, attrs)
	}
}

// RecordCacheGrow records resolver cache growth.
func (m *otelMetrics) RecordCacheGrow(ctx context.Context, capacity int) {
	m.cacheCapacity.Record(ctx, int64(capacity))
}
