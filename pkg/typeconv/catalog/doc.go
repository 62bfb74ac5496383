// Package catalog provides a thread-safe catalog of converters indexed by
// name, used to assemble registries from configuration.
//
//	c := catalog.New()
//	c.Register("time", timeFormatter)
//	c.Register("stringer", stringerFormatter)
//
//	r, err := c.Build([]string{"time", "stringer"})
//
// Range iterates over a snapshot, so the catalog may be modified from
// within the callback.
package catalog
