package builtin

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
	"github.com/randalmurphal/typeconv/pkg/typeconv/catalog"
)

// Default formatters.
var (
	Nil      = NewNilFormatter("nil", "null")
	String   = NewFormatter("string", func(s string) (string, error) { return s, nil })
	Bool     = NewFormatter("bool", func(b bool) (string, error) { return strconv.FormatBool(b), nil })
	Int      = NewFormatter("int", func(i int) (string, error) { return strconv.Itoa(i), nil })
	Int64    = NewFormatter("int64", func(i int64) (string, error) { return strconv.FormatInt(i, 10), nil })
	Float64  = NewFormatter("float64", formatFloat)
	Bytes    = NewFormatter("bytes", formatBytes)
	Time     = NewFormatter("time", func(t time.Time) (string, error) { return t.Format(time.RFC3339Nano), nil })
	Duration = NewFormatter("duration", func(d time.Duration) (string, error) { return d.String(), nil })
	Stringer = NewFormatter("stringer", func(s fmt.Stringer) (string, error) { return s.String(), nil })
	Error    = NewFormatter("error", func(e error) (string, error) { return e.Error(), nil })
	Any      = NewFormatter("any", func(v any) (string, error) { return fmt.Sprint(v), nil })
)

func formatFloat(f float64) (string, error) {
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func formatBytes(b []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}

// Defaults returns the default formatters in registration order.
func Defaults() []typeconv.Converter {
	return []typeconv.Converter{
		Nil, String, Bool, Int, Int64, Float64, Bytes,
		Time, Duration, Stringer, Error, Any,
	}
}

// Catalog returns a catalog holding the default formatters under their
// names.
func Catalog() *catalog.Catalog {
	c := catalog.New()
	for _, conv := range Defaults() {
		f := conv.(*Formatter)
		c.Register(f.Name(), f)
	}
	return c
}

// Types returns named query types: the supported type of every default
// formatter plus a few types that only resolve through an interface.
func Types() map[string]typeconv.Type {
	types := map[string]typeconv.Type{
		"uint8":   typeconv.TypeFor[uint8](),
		"url":     typeconv.TypeFor[*url.URL](),
		"ip":      typeconv.TypeFor[net.IP](),
		"operror": typeconv.TypeFor[*net.OpError](),
	}
	for _, conv := range Defaults() {
		f := conv.(*Formatter)
		types[f.Name()] = f.SupportedType()
	}
	return types
}
