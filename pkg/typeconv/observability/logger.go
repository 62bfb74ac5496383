package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns a logger that tags every record with the registry
// kind it serves.
func EnrichLogger(logger *slog.Logger, kind string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("kind", kind))
}

// LogSelectMiss logs a cold-path resolution and the converter it chose.
// converter is empty when no converter applies.
func LogSelectMiss(logger *slog.Logger, typeName, converter string) {
	if logger == nil {
		return
	}
	logger.Debug("converter resolved",
		slog.String("type", typeName),
		slog.String("converter", converter),
	)
}

// LogAmbiguous logs an ambiguous resolution.
func LogAmbiguous(logger *slog.Logger, typeName string, candidates int) {
	if logger == nil {
		return
	}
	logger.Warn("ambiguous converter match",
		slog.String("type", typeName),
		slog.Int("candidates", candidates),
	)
}

// LogCacheGrow logs resolver cache growth.
func LogCacheGrow(logger *slog.Logger, from, to int) {
	if logger == nil {
		return
	}
	logger.Debug("resolver cache grown",
		slog.Int("from", from),
		slog.Int("to", to),
	)
}

// LogRegistryChange logs a structural change to a registry.
// op is one of "added", "replaced" or "removed".
func LogRegistryChange(logger *slog.Logger, op, typeName string, size int) {
	if logger == nil {
		return
	}
	logger.Info("converter registry changed",
		slog.String("op", op),
		slog.String("type", typeName),
		slog.Int("size", size),
	)
}

// TimedOperation returns a function reporting the time elapsed since it was created.
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
