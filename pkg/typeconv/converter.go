package typeconv

import (
	"fmt"
	"reflect"
)

// Converter is anything that declares the single type it natively supports.
// What a converter does with values of that type is up to the embedding
// framework.
//
// SupportedType must return the same Type for the lifetime of the converter.
type Converter interface {
	SupportedType() Type
}

// Equaler is implemented by converters that define their own notion of
// sameness. Add and Remove use it to decide whether two converters are the
// same converter. Converters without it are compared with ==.
type Equaler interface {
	Equal(other Converter) bool
}

// Candidate describes a converter in an ambiguous match.
type Candidate struct {
	// Name is the converter's declaring identity.
	Name string
	// Type is the converter's supported type.
	Type Type
}

// String returns "name[type]".
func (c Candidate) String() string {
	return c.Name + "[" + c.Type.String() + "]"
}

// sameConverter reports whether a and b are the same converter.
func sameConverter(a, b Converter) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// converterName returns the name used to identify c in diagnostics and logs.
func converterName(c Converter) string {
	if c == nil {
		return ""
	}
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

func candidateOf(c Converter) Candidate {
	return Candidate{Name: converterName(c), Type: c.SupportedType()}
}
