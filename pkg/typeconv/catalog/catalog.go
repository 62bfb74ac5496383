package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
)

// ErrUnknownConverter indicates a name with no registered converter.
var ErrUnknownConverter = errors.New("unknown converter")

// Catalog is a thread-safe set of converters indexed by name.
// It uses sync.RWMutex since catalogs are read far more than written.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]typeconv.Converter
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]typeconv.Converter),
	}
}

// Register adds or replaces the converter under name.
//
// Panics if name is empty or c is nil.
func (c *Catalog) Register(name string, conv typeconv.Converter) {
	if name == "" {
		panic("catalog: converter name cannot be empty")
	}
	if conv == nil {
		panic("catalog: converter cannot be nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = conv
}

// RegisterMany adds every entry of convs.
func (c *Catalog) RegisterMany(convs map[string]typeconv.Converter) {
	for name, conv := range convs {
		c.Register(name, conv)
	}
}

// Get returns the converter registered under name.
func (c *Catalog) Get(name string) (typeconv.Converter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	conv, ok := c.entries[name]
	return conv, ok
}

// MustGet returns the converter registered under name, panicking if absent.
func (c *Catalog) MustGet(name string) typeconv.Converter {
	conv, ok := c.Get(name)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown converter %q", name))
	}
	return conv
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Delete removes name. Deleting an absent name does nothing.
func (c *Catalog) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered converters.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Range calls fn for each entry in name order until fn returns false.
// It iterates over a snapshot, so fn may modify the catalog.
func (c *Catalog) Range(fn func(name string, conv typeconv.Converter) bool) {
	c.mu.RLock()
	snapshot := make(map[string]typeconv.Converter, len(c.entries))
	for name, conv := range c.entries {
		snapshot[name] = conv
	}
	c.mu.RUnlock()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !fn(name, snapshot[name]) {
			return
		}
	}
}

// Resolve returns the converters registered under names, in order.
// Every unknown name is reported in the returned error.
func (c *Catalog) Resolve(names []string) ([]typeconv.Converter, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	convs := make([]typeconv.Converter, 0, len(names))
	var errs []error
	for _, name := range names {
		conv, ok := c.entries[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownConverter, name))
			continue
		}
		convs = append(convs, conv)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return convs, nil
}

// Build assembles a registry from the converters registered under names.
// Later names replace earlier ones with the same supported type, as
// Registry.Add does.
func (c *Catalog) Build(names []string, opts ...typeconv.Option) (*typeconv.Registry, error) {
	convs, err := c.Resolve(names)
	if err != nil {
		return nil, err
	}
	r := typeconv.New(nil, opts...)
	for _, conv := range convs {
		r, _ = r.Add(conv)
	}
	return r, nil
}
