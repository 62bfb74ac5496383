package typeconv

// Type hierarchy used across tests: Integer embeds Number.
type Number interface{ Float64() float64 }

type Integer interface {
	Number
	Int64() int64
}

type intVal int64

func (v intVal) Float64() float64 { return float64(v) }
func (v intVal) Int64() int64     { return int64(v) }

type floatVal float64

func (v floatVal) Float64() float64 { return float64(v) }

// Two unrelated interfaces and a type implementing both.
type Reader interface{ Read(p []byte) (int, error) }
type Writer interface{ Write(p []byte) (int, error) }

type readWriter struct{}

func (readWriter) Read(p []byte) (int, error)  { return 0, nil }
func (readWriter) Write(p []byte) (int, error) { return len(p), nil }

// testConverter compares by pointer identity.
type testConverter struct {
	name string
	typ  Type
}

func (c *testConverter) SupportedType() Type { return c.typ }
func (c *testConverter) Name() string        { return c.name }

func conv(name string, t Type) *testConverter {
	return &testConverter{name: name, typ: t}
}

// namedConverter compares by name through Equaler.
type namedConverter struct {
	name string
	typ  Type
	fn   func() // makes the struct non-comparable
}

func (c namedConverter) SupportedType() Type { return c.typ }

func (c namedConverter) Equal(other Converter) bool {
	o, ok := other.(namedConverter)
	return ok && o.name == c.name
}

func converters(cs ...Converter) []Converter { return cs }
