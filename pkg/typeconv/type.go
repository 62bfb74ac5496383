package typeconv

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Type identifies the type a converter supports or a caller queries for.
//
// A Type is either concrete, wrapping a reflect.Type, or Unconditional.
// The zero value is Unconditional. Types are comparable with == and compare
// by identity of the wrapped reflect.Type.
type Type struct {
	rt   reflect.Type
	hash uint64
}

// Unconditional is the type of converters that match nothing specific.
// Only an Unconditional query selects an Unconditional converter.
var Unconditional = Type{}

// Of wraps rt. A nil rt yields Unconditional.
func Of(rt reflect.Type) Type {
	if rt == nil {
		return Unconditional
	}
	return Type{rt: rt, hash: hashType(rt)}
}

// TypeFor returns the Type of T. Interface type arguments yield the
// interface type itself:
//
//	typeconv.TypeFor[fmt.Stringer]()
func TypeFor[T any]() Type {
	return Of(reflect.TypeFor[T]())
}

// TypeOfValue returns the dynamic Type of v, or Unconditional for a nil
// interface value.
func TypeOfValue(v any) Type {
	return Of(reflect.TypeOf(v))
}

// typeHashes memoizes hashType per reflect.Type so that wrapping a type on
// the lookup path does not allocate.
var typeHashes sync.Map // reflect.Type -> uint64

func hashType(rt reflect.Type) uint64 {
	if h, ok := typeHashes.Load(rt); ok {
		return h.(uint64)
	}

	d := xxhash.New()
	_, _ = d.WriteString(rt.PkgPath())
	_, _ = d.WriteString(".")
	_, _ = d.WriteString(rt.String())
	h := d.Sum64()
	if h == 0 {
		// 0 is reserved for Unconditional.
		h = 1
	}
	typeHashes.Store(rt, h)
	return h
}

// IsUnconditional reports whether t is the Unconditional type.
func (t Type) IsUnconditional() bool { return t.rt == nil }

// Reflect returns the wrapped reflect.Type, or nil for Unconditional.
func (t Type) Reflect() reflect.Type { return t.rt }

// Equal reports whether t and u are the same type.
func (t Type) Equal(u Type) bool { return t.rt == u.rt }

// AssignableTo reports whether a value of type t can be treated as a
// value of type u: t and u are identical, or u is an interface that t
// implements. Unconditional is assignable to nothing and nothing is
// assignable to it.
func (t Type) AssignableTo(u Type) bool {
	if t.rt == nil || u.rt == nil {
		return false
	}
	if t.rt == u.rt {
		return true
	}
	return u.rt.Kind() == reflect.Interface && t.rt.Implements(u.rt)
}

// String returns the Go syntax name of the type, or "<unconditional>".
func (t Type) String() string {
	if t.rt == nil {
		return "<unconditional>"
	}
	return t.rt.String()
}
