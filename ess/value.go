package ess

import "github.com/joshuapare/esskit/pkg/types"

// Value is a tagged value a Compound can hold. Concrete types:
//
//   - Int8, Int16, Int32, Int64
//   - Float32, Float64
//   - String, Bytes
//   - Int16s, Int32s, Int64s, Float32s, Float64s, Strings
//   - List
//   - *Compound
//
// The set is closed: only types in this package implement Value.
// Slice-backed values are treated as immutable once stored; callers must not
// modify a slice after handing it to a Compound.
type Value interface {
	Tag() types.Tag
	essValue() // sealed marker
}

type (
	// Int8 is a signed 8-bit integer.
	Int8 int8
	// Int16 is a signed 16-bit integer.
	Int16 int16
	// Int32 is a signed 32-bit integer.
	Int32 int32
	// Int64 is a signed 64-bit integer.
	Int64 int64
	// Float32 is an IEEE-754 single precision float.
	Float32 float32
	// Float64 is an IEEE-754 double precision float.
	Float64 float64
	// String is a UTF-8 string.
	String string
	// Bytes is an arbitrary byte sequence.
	Bytes []byte
	// Int16s is a sequence of signed 16-bit integers.
	Int16s []int16
	// Int32s is a sequence of signed 32-bit integers.
	Int32s []int32
	// Int64s is a sequence of signed 64-bit integers.
	Int64s []int64
	// Float32s is a sequence of single precision floats.
	Float32s []float32
	// Float64s is a sequence of double precision floats.
	Float64s []float64
	// Strings is a sequence of strings.
	Strings []string
	// List is an ordered sequence of values. Elements may be of mixed
	// variants but must not be nil.
	List []Value
)

func (Int8) Tag() types.Tag     { return types.TagInt8 }
func (Int16) Tag() types.Tag    { return types.TagInt16 }
func (Int32) Tag() types.Tag    { return types.TagInt32 }
func (Int64) Tag() types.Tag    { return types.TagInt64 }
func (Float32) Tag() types.Tag  { return types.TagFloat32 }
func (Float64) Tag() types.Tag  { return types.TagFloat64 }
func (String) Tag() types.Tag   { return types.TagString }
func (Bytes) Tag() types.Tag    { return types.TagBytes }
func (Int16s) Tag() types.Tag   { return types.TagInt16s }
func (Int32s) Tag() types.Tag   { return types.TagInt32s }
func (Int64s) Tag() types.Tag   { return types.TagInt64s }
func (Float32s) Tag() types.Tag { return types.TagFloat32s }
func (Float64s) Tag() types.Tag { return types.TagFloat64s }
func (Strings) Tag() types.Tag  { return types.TagStrings }
func (List) Tag() types.Tag     { return types.TagList }

// Tag reports TagCompound, also for a nil receiver.
func (*Compound) Tag() types.Tag { return types.TagCompound }

func (Int8) essValue()      {}
func (Int16) essValue()     {}
func (Int32) essValue()     {}
func (Int64) essValue()     {}
func (Float32) essValue()   {}
func (Float64) essValue()   {}
func (String) essValue()    {}
func (Bytes) essValue()     {}
func (Int16s) essValue()    {}
func (Int32s) essValue()    {}
func (Int64s) essValue()    {}
func (Float32s) essValue()  {}
func (Float64s) essValue()  {}
func (Strings) essValue()   {}
func (List) essValue()      {}
func (*Compound) essValue() {}

// isNil reports whether v carries no value: a nil interface or a nil
// *Compound.
func isNil(v Value) bool {
	if v == nil {
		return true
	}
	c, ok := v.(*Compound)
	return ok && c == nil
}
