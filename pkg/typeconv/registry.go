package typeconv

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"github.com/randalmurphal/typeconv/pkg/typeconv/observability"
)

// Registry is an immutable ordered set of converters with a self-populating
// resolver cache.
//
// The converter list never changes after construction. Add and Remove
// return new registries, each with its own empty cache, and leave the
// receiver untouched. A Registry is safe for concurrent use without
// locking: the cache is replaced wholesale through an atomic pointer, so
// readers see either the old table or a complete new one.
type Registry struct {
	converters []Converter
	cache      atomic.Pointer[selectTable]
	cfg        registryConfig
}

// New creates a registry over a copy of converters.
// The list should not contain two converters with the same supported type;
// Add enforces this for converters added later.
//
// Panics if any converter is nil.
func New(converters []Converter, opts ...Option) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, c := range converters {
		if c == nil {
			panic("typeconv: converter cannot be nil")
		}
	}
	return newRegistry(slices.Clone(converters), cfg)
}

// newRegistry takes ownership of converters.
func newRegistry(converters []Converter, cfg registryConfig) *Registry {
	r := &Registry{converters: converters, cfg: cfg}
	r.cache.Store(newSelectTable(cfg.cacheCapacity))
	return r
}

// Select returns the most specific converter for t.
//
// An exact match on t always wins. Otherwise the converters whose supported
// type t is assignable to are narrowed to the most specific ones; if exactly
// one remains it is returned. It returns (nil, nil) when no converter
// applies and an *AmbiguousMatchError when several unrelated converters are
// equally specific.
func (r *Registry) Select(t Type) (Converter, error) {
	return r.SelectContext(context.Background(), t)
}

// SelectValue returns the most specific converter for the dynamic type of v.
// A nil v queries Unconditional.
func (r *Registry) SelectValue(v any) (Converter, error) {
	return r.SelectContext(context.Background(), TypeOfValue(v))
}

// SelectContext is Select with a context for metrics and for the span that
// wraps a cache miss.
func (r *Registry) SelectContext(ctx context.Context, t Type) (Converter, error) {
	tbl := r.cache.Load()
	conv, slot, hit := tbl.lookup(t)
	r.cfg.metrics.RecordSelect(ctx, hit)
	if hit {
		return conv, nil
	}

	conv, err := r.resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	// Racing publishers may overwrite each other. Entries lost that way are
	// recomputed on the next miss.
	next, grew := tbl.with(slot, &selectEntry{key: t, conv: conv})
	r.cache.Store(next)
	if grew {
		observability.LogCacheGrow(r.cfg.logger, tbl.capacity(), next.capacity())
		r.cfg.metrics.RecordCacheGrow(ctx, next.capacity())
	}
	return conv, nil
}

func (r *Registry) resolve(ctx context.Context, t Type) (Converter, error) {
	elapsed := observability.TimedOperation()
	ctx, span := r.cfg.spans.StartResolveSpan(ctx, t.String(), len(r.converters))

	conv, err := selectSlow(r.converters, t)

	r.cfg.spans.EndSpanWithError(span, err)
	r.cfg.metrics.RecordResolve(ctx, t.String(), elapsed(), err)

	var ambiguous *AmbiguousMatchError
	if errors.As(err, &ambiguous) {
		observability.LogAmbiguous(r.cfg.logger, t.String(), len(ambiguous.Candidates))
	} else {
		observability.LogSelectMiss(r.cfg.logger, t.String(), converterName(conv))
	}
	return conv, err
}

// Len returns the number of converters.
func (r *Registry) Len() int {
	return len(r.converters)
}

// CopyInto copies the converters, in order, into dst.
// dst must have exactly Len() elements.
func (r *Registry) CopyInto(dst []Converter) error {
	if len(dst) != len(r.converters) {
		return &LengthError{Want: len(r.converters), Got: len(dst)}
	}
	copy(dst, r.converters)
	return nil
}

// Converters returns a copy of the converters in order.
func (r *Registry) Converters() []Converter {
	return slices.Clone(r.converters)
}

// Add returns a registry that includes c.
//
// If c is already present the receiver itself is returned. If a converter
// with the same supported type is present, the returned registry has c in
// its place and that converter is returned as removed. Otherwise c is
// appended and removed is nil.
//
// Panics if c is nil.
func (r *Registry) Add(c Converter) (next *Registry, removed Converter) {
	if c == nil {
		panic("typeconv: converter cannot be nil")
	}

	for _, existing := range r.converters {
		if sameConverter(c, existing) {
			return r, nil
		}
	}

	supported := c.SupportedType()
	for i, existing := range r.converters {
		if supported.Equal(existing.SupportedType()) {
			converters := slices.Clone(r.converters)
			converters[i] = c
			observability.LogRegistryChange(r.cfg.logger, "replaced", supported.String(), len(converters))
			return newRegistry(converters, r.cfg), existing
		}
	}

	converters := make([]Converter, len(r.converters)+1)
	copy(converters, r.converters)
	converters[len(r.converters)] = c
	observability.LogRegistryChange(r.cfg.logger, "added", supported.String(), len(converters))
	return newRegistry(converters, r.cfg), nil
}

// Remove returns a registry without c. If c is not present the receiver
// itself is returned and removed is nil.
//
// Panics if c is nil.
func (r *Registry) Remove(c Converter) (next *Registry, removed Converter) {
	if c == nil {
		panic("typeconv: converter cannot be nil")
	}
	for i, existing := range r.converters {
		if sameConverter(c, existing) {
			next, removed, _ = r.RemoveAt(i)
			return next, removed
		}
	}
	return r, nil
}

// RemoveAt returns a registry without the converter at index i, and that
// converter. It returns an *IndexError and the receiver when i is out of
// range.
func (r *Registry) RemoveAt(i int) (next *Registry, removed Converter, err error) {
	if i < 0 || i >= len(r.converters) {
		return r, nil, &IndexError{Index: i, Len: len(r.converters)}
	}

	removed = r.converters[i]
	converters := make([]Converter, 0, len(r.converters)-1)
	converters = append(converters, r.converters[:i]...)
	converters = append(converters, r.converters[i+1:]...)

	observability.LogRegistryChange(r.cfg.logger, "removed", removed.SupportedType().String(), len(converters))
	return newRegistry(converters, r.cfg), removed, nil
}
