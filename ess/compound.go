package ess

import (
	"iter"
	"maps"
	"slices"
)

// Compound is a named, heterogeneous value store.
//
// The zero value is an empty compound ready to use. Read accessors also
// accept a nil *Compound and treat it as empty; mutators require a non-nil
// receiver.
type Compound struct {
	m map[string]Value
}

// entry is a name/value pair captured for snapshot traversal.
type entry struct {
	name  string
	value Value
}

// New returns an empty compound.
func New() *Compound {
	return &Compound{m: make(map[string]Value)}
}

// FromMap returns a compound backed by values. The map is adopted, not
// copied: later changes through either side are visible to the other. Nil
// entries are dropped from it.
func FromMap(values map[string]Value) *Compound {
	if values == nil {
		return New()
	}
	maps.DeleteFunc(values, func(_ string, v Value) bool { return isNil(v) })
	return &Compound{m: values}
}

func (c *Compound) store() map[string]Value {
	if c.m == nil {
		c.m = make(map[string]Value)
	}
	return c.m
}

// Set stores v under name, replacing whatever was there regardless of its
// variant. Setting a nil value (or a nil *Compound) removes name.
func (c *Compound) Set(name string, v Value) {
	if isNil(v) {
		c.Remove(name)
		return
	}
	c.store()[name] = v
}

// Get returns the raw value stored under name. The boolean is false when
// name is absent, which is distinct from any variant's default.
func (c *Compound) Get(name string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.m[name]
	return v, ok
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// HasValue reports whether any stored value is Equal to v. It is a linear
// scan with deep comparison of nested compounds and lists.
func (c *Compound) HasValue(v Value) bool {
	if c == nil {
		return false
	}
	for _, stored := range c.m {
		if Equal(stored, v) {
			return true
		}
	}
	return false
}

// Remove deletes name. Removing an absent name is a no-op.
func (c *Compound) Remove(name string) {
	if c.m != nil {
		delete(c.m, name)
	}
}

// Replace swaps the value of an existing name and returns the previous
// value. When name is absent nothing is stored and Replace returns nil,
// false. A nil v is ignored the same way.
func (c *Compound) Replace(name string, v Value) (Value, bool) {
	prev, ok := c.Get(name)
	if !ok || isNil(v) {
		return nil, false
	}
	c.m[name] = v
	return prev, true
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.m)
}

// IsEmpty reports whether the compound has no entries.
func (c *Compound) IsEmpty() bool {
	return c.Len() == 0
}

// Clear removes every entry.
func (c *Compound) Clear() {
	clear(c.m)
}

// Names returns the entry names in sorted order.
func (c *Compound) Names() []string {
	if c == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(c.m))
}

// Values returns a snapshot of the stored values in map iteration order.
func (c *Compound) Values() []Value {
	if c == nil {
		return []Value{}
	}
	return slices.Collect(maps.Values(c.m))
}

// ForEach calls fn for every entry. Entries are captured before the first
// call, so fn may freely mutate the compound: the traversal still visits
// exactly the entries present when ForEach was called, with their values at
// that moment. Visiting order is unspecified.
func (c *Compound) ForEach(fn func(name string, v Value)) {
	for _, e := range c.snapshot() {
		fn(e.name, e.value)
	}
}

func (c *Compound) snapshot() []entry {
	if c.Len() == 0 {
		return nil
	}
	entries := make([]entry, 0, len(c.m))
	for name, v := range c.m {
		entries = append(entries, entry{name: name, value: v})
	}
	return entries
}

// All returns an iterator over the stored values. Each call starts a fresh
// pass over the live map, so Go's map iteration rules apply if the compound
// is modified while iterating: removed entries that were not reached yet
// are skipped, and added entries may or may not be produced.
func (c *Compound) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if c == nil {
			return
		}
		for _, v := range c.m {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries is like All but also yields names.
func (c *Compound) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if c == nil {
			return
		}
		for name, v := range c.m {
			if !yield(name, v) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. The top-level entries are duplicated, but
// nested compounds and sequences are shared: mutating a nested compound in
// place is visible through both copies, while Set on either top level is
// not.
func (c *Compound) Clone() *Compound {
	if c.Len() == 0 {
		return New()
	}
	return &Compound{m: maps.Clone(c.m)}
}
