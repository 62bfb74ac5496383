package manager

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
	"github.com/randalmurphal/typeconv/pkg/typeconv/catalog"
	"github.com/randalmurphal/typeconv/pkg/typeconv/config"
	"github.com/randalmurphal/typeconv/pkg/typeconv/observability"
)

// Manager holds one converter registry per kind.
//
// Reads load the current kind map without locking. Writers serialize on a
// mutex, derive a new registry and publish a new map. Listeners are called
// synchronously after each effective change is published, in publication
// order.
type Manager struct {
	registries atomic.Pointer[map[string]*typeconv.Registry]
	mu         sync.Mutex
	// notifyMu is taken before mu is released so that changes reach
	// listeners in the order they were published.
	notifyMu sync.Mutex

	listenersMu  sync.RWMutex
	listeners    map[uint64]Listener
	nextListener uint64

	logger     *slog.Logger
	registerer prometheus.Registerer
	regOpts    []typeconv.Option
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the base logger. Each kind's registry logs through it
// with a "kind" attribute.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithRegistryOptions appends options applied to every registry the
// manager creates.
func WithRegistryOptions(opts ...typeconv.Option) Option {
	return func(m *Manager) {
		m.regOpts = append(m.regOpts, opts...)
	}
}

// WithRegisterer sets the Prometheus registerer FromSettings uses for the
// "prometheus" metrics backend. Default: prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		m.registerer = reg
	}
}

// New creates a manager with no registries.
func New(opts ...Option) *Manager {
	m := &Manager{
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	empty := map[string]*typeconv.Registry{}
	m.registries.Store(&empty)
	return m
}

// FromSettings creates a manager with a registry per configured kind, built
// from the named converters in cat.
func FromSettings(s config.Settings, cat *catalog.Catalog, opts ...Option) (*Manager, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := New(opts...)
	regOpts := []typeconv.Option{typeconv.WithCacheCapacity(s.CacheCapacity)}

	switch s.Metrics {
	case config.MetricsOTel:
		regOpts = append(regOpts, typeconv.WithMetrics(observability.NewMetricsRecorder()))
	case config.MetricsPrometheus:
		pm, err := observability.NewPrometheusMetrics(m.registerer)
		if err != nil {
			return nil, fmt.Errorf("register prometheus metrics: %w", err)
		}
		regOpts = append(regOpts, typeconv.WithMetrics(pm))
	}
	if s.Tracing {
		regOpts = append(regOpts, typeconv.WithSpanManager(observability.NewSpanManager()))
	}
	// Explicit registry options win over settings.
	m.regOpts = append(regOpts, m.regOpts...)

	registries := make(map[string]*typeconv.Registry, len(s.Registries))
	var errs []error
	for _, kind := range s.Kinds() {
		r, err := cat.Build(s.Registries[kind], m.registryOptions(kind)...)
		if err != nil {
			errs = append(errs, fmt.Errorf("registry %q: %w", kind, err))
			continue
		}
		registries[kind] = r
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	m.registries.Store(&registries)
	return m, nil
}

func (m *Manager) registryOptions(kind string) []typeconv.Option {
	opts := slices.Clone(m.regOpts)
	if m.logger != nil {
		opts = append(opts, typeconv.WithLogger(observability.EnrichLogger(m.logger, kind)))
	}
	return opts
}

// Registry returns the registry for kind, or an empty registry if kind has
// none.
func (m *Manager) Registry(kind string) *typeconv.Registry {
	if r, ok := (*m.registries.Load())[kind]; ok {
		return r
	}
	return typeconv.New(nil, m.registryOptions(kind)...)
}

// Select returns the most specific converter for t in kind's registry.
func (m *Manager) Select(kind string, t typeconv.Type) (typeconv.Converter, error) {
	return m.Registry(kind).Select(t)
}

// SelectValue returns the most specific converter for the dynamic type of
// v in kind's registry.
func (m *Manager) SelectValue(kind string, v any) (typeconv.Converter, error) {
	return m.Registry(kind).SelectValue(v)
}

// Kinds returns the kinds with a registry, in sorted order.
func (m *Manager) Kinds() []string {
	return slices.Sorted(maps.Keys(*m.registries.Load()))
}

// Add adds c to kind's registry, creating the registry if needed, and
// returns the converter c replaced, if any.
//
// Panics if c is nil.
func (m *Manager) Add(kind string, c typeconv.Converter) typeconv.Converter {
	if c == nil {
		panic("manager: converter cannot be nil")
	}

	m.mu.Lock()
	current, ok := (*m.registries.Load())[kind]
	if !ok {
		current = typeconv.New(nil, m.registryOptions(kind)...)
	}
	next, removed := current.Add(c)
	if next == current {
		m.mu.Unlock()
		return nil
	}
	m.publish(kind, next)
	m.notifyMu.Lock()
	m.mu.Unlock()

	m.notify(newChange(kind, c, removed, next.Len()))
	m.notifyMu.Unlock()
	return removed
}

// Remove removes c from kind's registry and returns it, or nil if it was
// not present. The kind keeps its registry even when it becomes empty.
//
// Panics if c is nil.
func (m *Manager) Remove(kind string, c typeconv.Converter) typeconv.Converter {
	if c == nil {
		panic("manager: converter cannot be nil")
	}

	m.mu.Lock()
	current, ok := (*m.registries.Load())[kind]
	if !ok {
		m.mu.Unlock()
		return nil
	}
	next, removed := current.Remove(c)
	if removed == nil {
		m.mu.Unlock()
		return nil
	}
	m.publish(kind, next)
	m.notifyMu.Lock()
	m.mu.Unlock()

	m.notify(newChange(kind, nil, removed, next.Len()))
	m.notifyMu.Unlock()
	return removed
}

// publish stores a new kind map with r for kind. Callers hold m.mu.
func (m *Manager) publish(kind string, r *typeconv.Registry) {
	next := maps.Clone(*m.registries.Load())
	next[kind] = r
	m.registries.Store(&next)
}

// Subscribe registers fn for every subsequent change. Listeners run in
// subscription order on the goroutine that made the change, and changes
// arrive in the order they were published even under concurrent writers.
// A listener must not call Add or Remove on the same manager; it may read
// registries and subscribe or unsubscribe. The returned function removes
// the listener; calling it more than once is safe.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		panic("manager: listener cannot be nil")
	}

	m.listenersMu.Lock()
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn
	m.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.listenersMu.Lock()
			delete(m.listeners, id)
			m.listenersMu.Unlock()
		})
	}
}

func (m *Manager) notify(change Change) {
	m.listenersMu.RLock()
	ids := slices.Sorted(maps.Keys(m.listeners))
	listeners := make([]Listener, len(ids))
	for i, id := range ids {
		listeners[i] = m.listeners[id]
	}
	m.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(change)
	}
}
