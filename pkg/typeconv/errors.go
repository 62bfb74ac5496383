package typeconv

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrAmbiguousMatch indicates two or more converters are equally and
	// maximally specific for a query type.
	ErrAmbiguousMatch = errors.New("ambiguous converter match")

	// ErrIndexOutOfRange indicates RemoveAt was given an invalid index.
	ErrIndexOutOfRange = errors.New("converter index out of range")

	// ErrLengthMismatch indicates CopyInto was given a destination of the wrong length.
	ErrLengthMismatch = errors.New("destination length mismatch")
)

// AmbiguousMatchError lists the converters that remained after
// specificity resolution for a query type.
type AmbiguousMatchError struct {
	// Type is the query type.
	Type Type
	// Candidates are the surviving converters in registry order.
	Candidates []Candidate
}

// Error implements the error interface.
func (e *AmbiguousMatchError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.String()
	}
	return fmt.Sprintf("typeconv: unable to find best converter for type %q from remaining set: %s",
		e.Type.String(), strings.Join(names, ", "))
}

// Unwrap returns ErrAmbiguousMatch for errors.Is support.
func (e *AmbiguousMatchError) Unwrap() error {
	return ErrAmbiguousMatch
}

// IndexError reports an out-of-range RemoveAt.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("typeconv: index %d out of range [0:%d]", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is support.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// LengthError reports a CopyInto destination of the wrong length.
type LengthError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("typeconv: destination has length %d, need %d", e.Got, e.Want)
}

// Unwrap returns ErrLengthMismatch for errors.Is support.
func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}
