/*
Package typeconv provides a type-directed converter registry.

# Overview

Each converter declares the single type it natively supports. Given a
query type at runtime, a Registry finds the converter whose supported type
is the most specific match, and reports an error when no unique best match
exists. Registries are immutable: Add and Remove return new registries.
Lookups are served from a lock-free cache after the first resolution of
each query type.

# Basic Usage

	type Formatter struct{ typ typeconv.Type }

	func (f Formatter) SupportedType() typeconv.Type { return f.typ }

	r := typeconv.New([]typeconv.Converter{
	    Formatter{typ: typeconv.TypeFor[fmt.Stringer]()},
	    Formatter{typ: typeconv.TypeFor[time.Time]()},
	})

	c, err := r.SelectValue(time.Now())      // time.Time formatter: exact match
	c, err = r.SelectValue(time.Second)      // fmt.Stringer formatter
	c, err = r.SelectValue(42)               // nil, nil: nothing applies

# Specificity

Go has no class hierarchy, so "supertype" means interface satisfaction: a
supported type S applies to query type Q when Q is S or S is an interface
that Q implements. Among the applicable converters, any whose supported
type is implemented by another candidate's is discarded. If two or more
candidates remain, Select returns an *AmbiguousMatchError:

	type Reader interface{ Read([]byte) (int, error) }
	type Writer interface{ Write([]byte) (int, error) }
	// With converters for Reader and Writer only, a query for *os.File
	// is ambiguous.

Converters whose supported type is Unconditional are selected only by an
Unconditional query, which is what TypeOfValue(nil) returns.

# Mutations

	next, removed := r.Add(c)        // replaces a converter of the same type
	next, removed = r.Remove(c)
	next, removed, err := r.RemoveAt(0)

Every derived registry starts with an empty cache and inherits the
receiver's options.

# Thread Safety

All Registry methods are safe for concurrent use. The cache is
copy-then-publish: a miss clones the table, inserts into the clone and
atomically swaps it in. Concurrent misses may lose each other's entries,
which only costs a recomputation later.
*/
package typeconv
