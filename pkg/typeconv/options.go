package typeconv

import (
	"log/slog"

	"github.com/randalmurphal/typeconv/pkg/typeconv/observability"
)

// Initial resolver cache sizes.
const (
	// DefaultCacheCapacity is the initial number of resolver cache slots.
	DefaultCacheCapacity = 16
	// MaxCacheCapacity bounds the initial capacity WithCacheCapacity accepts.
	MaxCacheCapacity = 1 << 20
)

// registryConfig holds the settings a registry passes on to every registry
// derived from it.
type registryConfig struct {
	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
	cacheCapacity int
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		metrics:       observability.NoopMetrics{},
		spans:         observability.NoopSpanManager{},
		cacheCapacity: DefaultCacheCapacity,
	}
}

// Option configures a Registry.
type Option func(*registryConfig)

// WithLogger sets the logger for cold-path resolutions, cache growth and
// structural changes. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics{}.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *registryConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for cold-path resolutions.
// Default: observability.NoopSpanManager{}.
func WithSpanManager(s observability.SpanManager) Option {
	return func(c *registryConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithCacheCapacity sets the initial resolver cache capacity, rounded up to
// a power of two and clamped to MaxCacheCapacity. Values below 1 are ignored.
//
// Example:
//
//	r := typeconv.New(converters, typeconv.WithCacheCapacity(64))
func WithCacheCapacity(n int) Option {
	return func(c *registryConfig) {
		if n > 0 {
			c.cacheCapacity = nextPowerOfTwo(min(n, MaxCacheCapacity))
		}
	}
}

// nextPowerOfTwo returns the smallest power of two >= n. n must not exceed
// MaxCacheCapacity.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n && p < MaxCacheCapacity {
		p <<= 1
	}
	return p
}
