package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Metrics backends.
const (
	MetricsNone       = "none"
	MetricsOTel       = "otel"
	MetricsPrometheus = "prometheus"
)

// Cache capacity bounds, matching the registry's.
const (
	DefaultCacheCapacity = 16
	MaxCacheCapacity     = 1 << 20
)

// ErrInvalidSettings indicates settings that cannot configure a registry.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures converter registries.
type Settings struct {
	// CacheCapacity is the initial resolver cache size of each registry.
	CacheCapacity int
	// LogLevel is the minimum level logged.
	LogLevel slog.Level
	// Metrics names the metrics backend: "none", "otel" or "prometheus".
	Metrics string
	// Tracing enables OTel spans around cold-path resolutions.
	Tracing bool
	// Registries maps a kind to its ordered converter names.
	Registries map[string][]string
}

// DefaultSettings returns settings with no registries, metrics or tracing.
func DefaultSettings() Settings {
	return Settings{
		CacheCapacity: DefaultCacheCapacity,
		LogLevel:      slog.LevelInfo,
		Metrics:       MetricsNone,
		Registries:    map[string][]string{},
	}
}

// Settings decodes registry settings. Missing or mistyped values keep
// their defaults; an unknown log level keeps slog.LevelInfo.
//
//	cache_capacity: 32
//	log_level: debug
//	metrics: otel
//	tracing: true
//	registries:
//	  format: [nil, string, time, stringer]
func (c Config) Settings() Settings {
	s := DefaultSettings()
	s.CacheCapacity = c.Int("cache_capacity", s.CacheCapacity)
	s.Metrics = strings.ToLower(c.String("metrics", s.Metrics))
	s.Tracing = c.Bool("tracing", s.Tracing)

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log_level", "info"))); err == nil {
		s.LogLevel = level
	}

	registries := c.Section("registries")
	for _, kind := range registries.Keys() {
		s.Registries[kind] = registries.StringSlice(kind, nil)
	}
	return s
}

// Validate reports settings that cannot be applied.
func (s Settings) Validate() error {
	var errs []error
	switch {
	case s.CacheCapacity < 1:
		errs = append(errs, fmt.Errorf("%w: cache_capacity must be positive, got %d", ErrInvalidSettings, s.CacheCapacity))
	case s.CacheCapacity > MaxCacheCapacity:
		errs = append(errs, fmt.Errorf("%w: cache_capacity must be at most %d, got %d", ErrInvalidSettings, MaxCacheCapacity, s.CacheCapacity))
	}
	switch s.Metrics {
	case MetricsNone, MetricsOTel, MetricsPrometheus:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown metrics backend %q", ErrInvalidSettings, s.Metrics))
	}
	for _, kind := range s.Kinds() {
		if len(s.Registries[kind]) == 0 {
			errs = append(errs, fmt.Errorf("%w: registry %q lists no converters", ErrInvalidSettings, kind))
		}
	}
	return errors.Join(errs...)
}

// Kinds returns the configured registry kinds in sorted order.
func (s Settings) Kinds() []string {
	kinds := make([]string, 0, len(s.Registries))
	for k := range s.Registries {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// LoadSettings reads, decodes and validates the settings file at path.
func LoadSettings(path string) (Settings, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	s := cfg.Settings()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}
