package typeconv

import "slices"

// selectEntry memoizes the resolution of one query type. conv is nil when
// no converter applies.
type selectEntry struct {
	key  Type
	conv Converter
}

// selectTable is an immutable hashtable: closed hashing, linear scanning,
// power-of-two size, at least one nil slot. Published tables are never
// written; updates build a copy.
type selectTable struct {
	entries []*selectEntry
}

func newSelectTable(capacity int) *selectTable {
	return &selectTable{entries: make([]*selectEntry, capacity)}
}

// slotFor returns the first slot to scan for t.
func slotFor(t Type, capacity int) int {
	return int(t.hash & uint64(capacity-1))
}

// lookup finds t. On a miss, slot is the empty slot where t belongs.
// Termination depends on the table holding at least one nil slot.
func (tbl *selectTable) lookup(t Type) (conv Converter, slot int, hit bool) {
	entries := tbl.entries
	mask := len(entries) - 1
	i := slotFor(t, len(entries))
	for {
		e := entries[i]
		if e == nil {
			return nil, i, false
		}
		if e.key.rt == t.rt {
			return e.conv, i, true
		}
		i = (i + 1) & mask
	}
}

// with returns a copy of tbl holding e at slot. When the copy has no nil
// slot left it is rehashed into a table of twice the capacity, and grew is
// true. tbl itself is not modified.
func (tbl *selectTable) with(slot int, e *selectEntry) (next *selectTable, grew bool) {
	entries := slices.Clone(tbl.entries)
	entries[slot] = e

	if slices.Contains(entries, nil) {
		return &selectTable{entries: entries}, false
	}

	grown := make([]*selectEntry, len(entries)<<1)
	mask := len(grown) - 1
	for _, old := range entries {
		i := slotFor(old.key, len(grown))
		for grown[i] != nil {
			i = (i + 1) & mask
		}
		grown[i] = old
	}
	return &selectTable{entries: grown}, true
}

// capacity returns the number of slots.
func (tbl *selectTable) capacity() int { return len(tbl.entries) }

// size returns the number of occupied slots.
func (tbl *selectTable) size() int {
	n := 0
	for _, e := range tbl.entries {
		if e != nil {
			n++
		}
	}
	return n
}
