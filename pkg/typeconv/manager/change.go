package manager

import (
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/typeconv/pkg/typeconv"
)

// Op describes how a registry changed.
type Op string

// Change operations.
const (
	OpAdded    Op = "added"
	OpReplaced Op = "replaced"
	OpRemoved  Op = "removed"
)

// Change describes one published registry change.
type Change struct {
	// ID uniquely identifies the change.
	ID string
	// Kind is the registry kind that changed.
	Kind string
	Op   Op
	// Added is the converter added, nil for OpRemoved.
	Added typeconv.Converter
	// Removed is the converter replaced or removed, nil for OpAdded.
	Removed typeconv.Converter
	// Size is the number of converters after the change.
	Size int
	At   time.Time
}

func newChange(kind string, added, removed typeconv.Converter, size int) Change {
	op := OpAdded
	switch {
	case added == nil:
		op = OpRemoved
	case removed != nil:
		op = OpReplaced
	}
	return Change{
		ID:      uuid.New().String(),
		Kind:    kind,
		Op:      op,
		Added:   added,
		Removed: removed,
		Size:    size,
		At:      time.Now(),
	}
}

// Listener receives published changes.
type Listener func(Change)
