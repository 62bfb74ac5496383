// Package builtin provides a default set of converters that render values
// as strings.
//
// Each Formatter supports one type. Interface formatters such as Stringer
// and Error apply to every implementing type unless a more specific
// formatter is registered:
//
//	r := typeconv.New(builtin.Defaults())
//	s, err := builtin.Format(r, 90*time.Second) // "1m30s", via Duration
//	s, err = builtin.Format(r, net.IPv4(127, 0, 0, 1)) // "127.0.0.1", via Stringer
//
// A value whose type implements both fmt.Stringer and error has no single
// most specific formatter, and Format returns a
// *typeconv.AmbiguousMatchError. Register a formatter for the concrete type
// to settle it.
package builtin
