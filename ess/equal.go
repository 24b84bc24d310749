package ess

import (
	"bytes"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/esskit/internal/format"
	"github.com/joshuapare/esskit/pkg/types"
)

// Equal reports whether a and b are the same variant holding the same value.
//
// Sequences compare element-wise, so a nil and an empty sequence of the same
// variant are equal. Floats compare by bit pattern: NaN equals NaN and +0
// differs from -0, which is what a byte-exact round-trip preserves. Lists and
// compounds compare deeply.
func Equal(a, b Value) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch x := a.(type) {
	case Int8:
		return x == b.(Int8)
	case Int16:
		return x == b.(Int16)
	case Int32:
		return x == b.(Int32)
	case Int64:
		return x == b.(Int64)
	case Float32:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float32)))
	case Float64:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Float64)))
	case String:
		return x == b.(String)
	case Bytes:
		return bytes.Equal(x, b.(Bytes))
	case Int16s:
		return slices.Equal(x, b.(Int16s))
	case Int32s:
		return slices.Equal(x, b.(Int32s))
	case Int64s:
		return slices.Equal(x, b.(Int64s))
	case Float32s:
		return slices.EqualFunc(x, b.(Float32s), func(p, q float32) bool {
			return math.Float32bits(p) == math.Float32bits(q)
		})
	case Float64s:
		return slices.EqualFunc(x, b.(Float64s), func(p, q float64) bool {
			return math.Float64bits(p) == math.Float64bits(q)
		})
	case Strings:
		return slices.Equal(x, b.(Strings))
	case List:
		return slices.EqualFunc(x, b.(List), Equal)
	case *Compound:
		return x.Equal(b.(*Compound))
	default:
		return false
	}
}

// Equal reports whether c and other hold the same names, each mapped to an
// equal value. A nil compound equals an empty one.
func (c *Compound) Equal(other *Compound) bool {
	if c == other {
		return true
	}
	if c.Len() != other.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	for name, v := range c.m {
		w, ok := other.m[name]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the compound's contents that is independent of
// insertion order: compounds that are Equal hash equal.
func (c *Compound) Hash() uint64 {
	return c.hash(1)
}

func (c *Compound) hash(depth int) uint64 {
	if c.Len() == 0 {
		return 0
	}
	var sum uint64
	d := xxhash.New()
	w := format.NewWriter(d)
	for name, v := range c.m {
		d.Reset()
		w.WriteString(name)
		hashValue(w, v, depth+1)
		sum += d.Sum64()
	}
	return sum
}

// hashValue feeds v's tag and payload into w. Entries are combined by
// addition in hash, so nested compounds contribute their own order-free sum.
// Containers deeper than format.MaxDepth contribute only their tag, which
// keeps a compound that contains itself from recursing forever.
func hashValue(w *format.Writer, v Value, depth int) {
	if isNil(v) {
		w.WriteTag(types.TagInvalid)
		return
	}
	w.WriteTag(v.Tag())
	switch x := v.(type) {
	case List:
		if depth > format.MaxDepth {
			return
		}
		w.WriteLen(len(x))
		for _, item := range x {
			hashValue(w, item, depth+1)
		}
	case *Compound:
		if depth > format.MaxDepth {
			return
		}
		w.WriteI64(int64(x.hash(depth)))
	default:
		writeLeaf(w, v)
	}
}
