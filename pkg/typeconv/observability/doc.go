// Package observability provides logging, metrics and tracing hooks for
// converter resolution.
//
// All hooks are optional. The registry defaults to NoopMetrics and
// NoopSpanManager and to a nil *slog.Logger; every logging helper in this
// package accepts a nil logger and does nothing.
//
// Metrics are recorded either through OpenTelemetry (NewMetricsRecorder,
// global meter provider) or a Prometheus registry (NewPrometheusMetrics).
// Spans are only started on cache misses, so the hot path stays free of
// tracing overhead.
package observability
