package config_test

import (
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/typeconv/pkg/typeconv/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	cfg := config.New(map[string]any{
		"name":     "format",
		"enabled":  true,
		"size":     32,
		"size64":   int64(64),
		"sizeJSON": float64(8),
		"ratio":    0.5,
		"names":    []any{"a", "b"},
		"mixed":    []any{"a", 1},
		"typed":    []string{"x"},
		"nested":   map[string]any{"k": "v"},
	})

	assert.Equal(t, "format", cfg.String("name", "d"))
	assert.Equal(t, "d", cfg.String("enabled", "d"))
	assert.Equal(t, "d", cfg.String("missing", "d"))

	assert.True(t, cfg.Bool("enabled", false))
	assert.True(t, cfg.Bool("name", true))

	assert.Equal(t, 32, cfg.Int("size", 0))
	assert.Equal(t, 64, cfg.Int("size64", 0))
	assert.Equal(t, 8, cfg.Int("sizeJSON", 0))
	assert.Equal(t, 7, cfg.Int("ratio", 7), "fractional float keeps default")
	assert.Equal(t, 7, cfg.Int("name", 7))

	assert.Equal(t, []string{"a", "b"}, cfg.StringSlice("names", nil))
	assert.Equal(t, []string{"x"}, cfg.StringSlice("typed", nil))
	assert.Equal(t, []string{"d"}, cfg.StringSlice("mixed", []string{"d"}))
	assert.Nil(t, cfg.StringSlice("missing", nil))

	assert.Equal(t, "v", cfg.Section("nested").String("k", ""))
	assert.Empty(t, cfg.Section("name").Keys())

	assert.True(t, cfg.Has("nested"))
	assert.False(t, cfg.Has("missing"))
	assert.Len(t, cfg.Keys(), 10)
	assert.Equal(t, "enabled", cfg.Keys()[0])
}

func TestNew_NilMap(t *testing.T) {
	cfg := config.New(nil)
	assert.NotNil(t, cfg.Raw())
	assert.Empty(t, cfg.Keys())
}

const settingsYAML = `
cache_capacity: 32
log_level: debug
metrics: Prometheus
tracing: true
registries:
  format: [nil, string, time, stringer]
  instant:
    - time
    - int64
`

func TestSettings(t *testing.T) {
	cfg, err := config.FromYAML([]byte(settingsYAML))
	require.NoError(t, err)

	s := cfg.Settings()
	assert.Equal(t, 32, s.CacheCapacity)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, config.MetricsPrometheus, s.Metrics)
	assert.True(t, s.Tracing)
	assert.Equal(t, []string{"format", "instant"}, s.Kinds())
	assert.Equal(t, []string{"nil", "string", "time", "stringer"}, s.Registries["format"])
	assert.Equal(t, []string{"time", "int64"}, s.Registries["instant"])
	assert.NoError(t, s.Validate())
}

func TestSettings_Defaults(t *testing.T) {
	s := config.New(map[string]any{"log_level": "verbose"}).Settings()

	assert.Equal(t, config.DefaultSettings().CacheCapacity, s.CacheCapacity)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, config.MetricsNone, s.Metrics)
	assert.False(t, s.Tracing)
	assert.Empty(t, s.Kinds())
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Settings)
		errMsg string
	}{
		{"zero capacity", func(s *config.Settings) { s.CacheCapacity = 0 }, "cache_capacity must be positive"},
		{"capacity too large", func(s *config.Settings) { s.CacheCapacity = config.MaxCacheCapacity + 1 }, "cache_capacity must be at most 1048576"},
		{"capacity max int", func(s *config.Settings) { s.CacheCapacity = math.MaxInt }, "cache_capacity must be at most"},
		{"unknown metrics", func(s *config.Settings) { s.Metrics = "statsd" }, `unknown metrics backend "statsd"`},
		{"empty registry", func(s *config.Settings) { s.Registries["format"] = nil }, `registry "format" lists no converters`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			tt.modify(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "typeconv.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(settingsYAML), 0o600))

	jsonPath := filepath.Join(dir, "typeconv.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"cache_capacity": 64, "registries": {"format": ["string"]}}`), 0o600))

	t.Run("yaml", func(t *testing.T) {
		cfg, err := config.FromFile(yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 32, cfg.Int("cache_capacity", 0))
	})

	t.Run("json", func(t *testing.T) {
		s, err := config.LoadSettings(jsonPath)
		require.NoError(t, err)
		assert.Equal(t, 64, s.CacheCapacity)
		assert.Equal(t, []string{"string"}, s.Registries["format"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "typeconv.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))
		_, err := config.FromFile(path)
		assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
		assert.ErrorContains(t, err, path)
		assert.ErrorContains(t, err, `".toml"`)
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.yaml")
		_, err := config.FromFile(missing)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorContains(t, err, "config "+missing)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("registries: [unclosed"))
		assert.ErrorContains(t, err, "parse yaml")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("\n  \n"), 0o600))
		_, err := config.LoadSettings(path)
		assert.ErrorIs(t, err, config.ErrEmptyConfig)
		assert.ErrorContains(t, err, path)
	})

	t.Run("invalid yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yml")
		require.NoError(t, os.WriteFile(path, []byte("registries: [unclosed"), 0o600))
		_, err := config.FromFile(path)
		assert.ErrorContains(t, err, "config "+path+": parse yaml")
	})

	t.Run("huge cache capacity", func(t *testing.T) {
		path := filepath.Join(dir, "huge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cache_capacity: 9223372036854775807\n"), 0o600))
		_, err := config.LoadSettings(path)
		assert.ErrorIs(t, err, config.ErrInvalidSettings)
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("metrics: statsd\n"), 0o600))
		_, err := config.LoadSettings(path)
		assert.ErrorIs(t, err, config.ErrInvalidSettings)
	})
}
