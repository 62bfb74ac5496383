package builtin

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
)

// Sentinel errors for formatting.
var (
	// ErrNoConverter indicates that no converter applies to a value's type.
	ErrNoConverter = errors.New("no converter for type")

	// ErrNotFormatter indicates that the selected converter cannot render
	// values.
	ErrNotFormatter = errors.New("converter does not format values")

	// ErrTypeMismatch indicates a value handed to a formatter for another type.
	ErrTypeMismatch = errors.New("value type mismatch")
)

// ValueFormatter is a converter that renders values as strings.
type ValueFormatter interface {
	typeconv.Converter
	Format(v any) (string, error)
}

// Formatter renders values of one supported type. Formatters compare by
// identity.
type Formatter struct {
	name string
	typ  typeconv.Type
	fn   func(any) (string, error)
}

var _ ValueFormatter = (*Formatter)(nil)

// NewFormatter creates a formatter for values of type T. When T is an
// interface the formatter applies to every type implementing it.
func NewFormatter[T any](name string, fn func(T) (string, error)) *Formatter {
	typ := typeconv.TypeFor[T]()
	return &Formatter{
		name: name,
		typ:  typ,
		fn: func(v any) (string, error) {
			tv, ok := v.(T)
			if !ok {
				return "", fmt.Errorf("%w: %s cannot format %T", ErrTypeMismatch, name, v)
			}
			return fn(tv)
		},
	}
}

// NewNilFormatter creates the Unconditional formatter, selected only for
// nil values. It renders them as text.
func NewNilFormatter(name, text string) *Formatter {
	return &Formatter{
		name: name,
		typ:  typeconv.Unconditional,
		fn: func(v any) (string, error) {
			if v != nil {
				return "", fmt.Errorf("%w: %s cannot format %T", ErrTypeMismatch, name, v)
			}
			return text, nil
		},
	}
}

// SupportedType returns the type the formatter applies to.
func (f *Formatter) SupportedType() typeconv.Type { return f.typ }

// Name returns the formatter name.
func (f *Formatter) Name() string { return f.name }

// Format renders v.
func (f *Formatter) Format(v any) (string, error) {
	return f.fn(v)
}

func (f *Formatter) String() string {
	return f.name + "[" + f.typ.String() + "]"
}

// Format renders v with the converter r selects for v's dynamic type.
// A nil v selects the Unconditional converter.
func Format(r *typeconv.Registry, v any) (string, error) {
	conv, err := r.SelectValue(v)
	if err != nil {
		return "", err
	}
	if conv == nil {
		return "", fmt.Errorf("%w %s", ErrNoConverter, typeconv.TypeOfValue(v))
	}
	vf, ok := conv.(ValueFormatter)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrNotFormatter, conv)
	}
	return vf.Format(v)
}
