package ess

import (
	"math"
	"testing"
)

// sampleCompound builds the demo compound: one Int32 and one String.
func sampleCompound(t testing.TB) *Compound {
	t.Helper()
	c := New()
	c.SetInt("TestInteger", 1337)
	c.SetString("TestString", "Hello World!")
	return c
}

// allVariants builds a compound holding every variant at least once,
// including nesting of lists and compounds and awkward float bit patterns.
func allVariants(t testing.TB) *Compound {
	t.Helper()

	inner := New()
	inner.SetString("name", "inner")
	inner.SetInt64s("ids", []int64{math.MinInt64, 0, math.MaxInt64})

	deeper := New()
	deeper.SetFloat64("nan", math.NaN())
	inner.SetCompound("deeper", deeper)

	c := New()
	c.SetInt8("i8", math.MinInt8)
	c.SetInt16("i16", math.MaxInt16)
	c.SetInt("i32", 1337)
	c.SetInt64("i64", math.MinInt64)
	c.SetFloat32("f32", 3.25)
	c.SetFloat64("f64", math.Inf(-1))
	c.SetFloat64("negzero", math.Copysign(0, -1))
	c.SetString("str", "Hello World! ünïcödé ✓")
	c.SetString("empty", "")
	c.SetBytes("bytes", []byte{0x00, 0xFF, 0x7F})
	c.SetInt16s("i16s", []int16{-1, 0, 1})
	c.SetInt32s("i32s", []int32{200, 200, 208, 208, 203, 205, 203, 205, 48, 30})
	c.SetInt64s("i64s", nil)
	c.SetFloat32s("f32s", []float32{float32(math.NaN()), 1.5})
	c.SetFloat64s("f64s", []float64{math.SmallestNonzeroFloat64, math.MaxFloat64})
	c.SetStrings("strs", []string{"a", "", "ccc"})
	c.SetList("list", Int32(1), String("two"), List{Int8(3)}, inner.Clone())
	c.SetList("emptyList")
	c.SetCompound("inner", inner)
	c.SetCompound("emptyCompound", New())
	return c
}
