package manifest

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/esskit/ess"
	"github.com/joshuapare/esskit/pkg/types"
)

func allVariants() *ess.Compound {
	inner := ess.New()
	inner.SetInt8("level", -3)
	inner.SetString("name", "Steve")

	c := ess.New()
	c.SetInt8("i8", math.MinInt8)
	c.SetInt16("i16", math.MaxInt16)
	c.SetInt("i32", 1337)
	c.SetInt64("i64", math.MaxInt64)
	c.SetFloat32("f32", 0.1)
	c.SetFloat64("f64", -2)
	c.SetFloat64("nan", math.NaN())
	c.SetFloat32("ninf", float32(math.Inf(-1)))
	c.SetFloat64("negzero", math.Copysign(0, -1))
	c.SetString("str", "Hello World!")
	c.SetString("tricky", "true")
	c.SetString("multiline", "a\nb\n")
	c.SetString("empty", "")
	c.SetBytes("bytes", []byte{0xde, 0xad, 0xbe, 0xef})
	c.SetInt16s("i16s", []int16{1, -2})
	c.SetInt32s("i32s", []int32{})
	c.SetInt64s("i64s", []int64{math.MinInt64})
	c.SetFloat32s("f32s", []float32{1, 2.5})
	c.SetFloat64s("f64s", []float64{math.Inf(1), 1e21})
	c.SetStrings("strs", []string{"a", "1", "null", ""})
	c.SetList("list", ess.Int32(1), ess.String("two"), inner.Clone(), ess.List{})
	c.SetCompound("inner", inner)
	c.SetCompound("none", ess.New())
	c.SetString("123", "numeric name")
	return c
}

// ============================================================================
// Round-trip
// ============================================================================

func TestRoundTrip(t *testing.T) {
	c := allVariants()
	data, err := Marshal(c)
	require.NoError(t, err)
	t.Logf("manifest:\n%s", data)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, back.Equal(c), "got %s", back)
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(allVariants())
	require.NoError(t, err)
	b, err := Marshal(allVariants())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMarshal_Sample(t *testing.T) {
	c := ess.New()
	c.SetString("TestString", "Hello World!")
	c.SetInt("TestInteger", 1337)

	data, err := Marshal(c)
	require.NoError(t, err)
	require.Equal(t, "TestInteger: !i32 1337\nTestString: !str Hello World!\n", string(data))
}

func TestMarshal_Empty(t *testing.T) {
	data, err := Marshal(ess.New())
	require.NoError(t, err)
	require.Equal(t, "{}\n", string(data))
}

func TestMarshal_Errors(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)

	c := ess.New()
	c.Set("l", ess.List{nil})
	_, err = Marshal(c)
	require.Error(t, err)

	self := ess.New()
	self.Set("self", self)
	_, err = Marshal(self)
	require.Error(t, err)
}

// ============================================================================
// Unmarshal
// ============================================================================

func TestUnmarshal_Inference(t *testing.T) {
	src := `
small: 42
big: 9000000000
hex: 0x1F
ratio: 0.5
inf: .inf
name: Steve
quoted: "42"
date: 2001-12-14
seq: [1, x, 2.5]
nested:
  inner: -1
`
	c, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, ess.Int32(42), mustGet(t, c, "small"))
	assert.Equal(t, ess.Int64(9000000000), mustGet(t, c, "big"))
	assert.Equal(t, ess.Int32(31), mustGet(t, c, "hex"))
	assert.Equal(t, ess.Float64(0.5), mustGet(t, c, "ratio"))
	assert.True(t, math.IsInf(c.GetFloat64("inf"), 1))
	assert.Equal(t, ess.String("Steve"), mustGet(t, c, "name"))
	assert.Equal(t, ess.String("42"), mustGet(t, c, "quoted"))
	assert.Equal(t, ess.String("2001-12-14"), mustGet(t, c, "date"))
	assert.Equal(t, ess.List{ess.Int32(1), ess.String("x"), ess.Float64(2.5)}, mustGet(t, c, "seq"))
	assert.Equal(t, int32(-1), c.GetCompound("nested").GetInt("inner"))
}

func TestUnmarshal_Tags(t *testing.T) {
	src := `
a: !i8 -128
b: !i16 0x7fff
c: !i64 1_000
d: !f32 .NaN
e: !str 12
f: !bytes |
  3q2+
  7w==
g: !i16s [1, 2]
h: !strs [x, 2]
i: !list [!i8 1, {k: v}]
j: !!binary AAE=
`
	c, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, int8(-128), c.GetInt8("a"))
	assert.Equal(t, int16(math.MaxInt16), c.GetInt16("b"))
	assert.Equal(t, int64(1000), c.GetInt64("c"))
	assert.True(t, math.IsNaN(float64(c.GetFloat32("d"))))
	assert.Equal(t, "12", c.GetString("e"))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, c.GetBytes("f"))
	assert.Equal(t, []int16{1, 2}, c.GetInt16s("g"))
	assert.Equal(t, []string{"x", "2"}, c.GetStrings("h"))
	l := c.GetList("i")
	require.Len(t, l, 2)
	assert.Equal(t, ess.Int8(1), l[0])
	assert.Equal(t, "v", l[1].(*ess.Compound).GetString("k"))
	assert.Equal(t, []byte{0, 1}, c.GetBytes("j"))
}

func TestUnmarshal_Anchors(t *testing.T) {
	src := `
base: &b {x: !i8 1}
copy: *b
`
	c, err := Unmarshal([]byte(src))
	require.NoError(t, err)
	require.True(t, c.GetCompound("base").Equal(c.GetCompound("copy")))
	require.NotSame(t, c.GetCompound("base"), c.GetCompound("copy"))
}

func TestUnmarshal_EmptyDocument(t *testing.T) {
	for _, src := range []string{"", "# nothing\n", "~\n"} {
		c, err := Unmarshal([]byte(src))
		require.NoError(t, err, "source %q", src)
		require.True(t, c.IsEmpty())
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"root sequence", "- 1\n", 1},
		{"bool", "ok: true\n", 1},
		{"int8 overflow", "a: 1\nb: !i8 200\n", 2},
		{"bad float", "x: !f64 abc\n", 1},
		{"unknown tag", "x: !date 2020\n", 1},
		{"duplicate", "a: 1\nb: 2\na: 3\n", 3},
		{"bad base64", "x: !bytes '***'\n", 1},
		{"array of mappings", "x: !i32s [{a: 1}]\n", 1},
		{"scalar as list", "x: !list 5\n", 1},
		{"mapping key", "? [a]\n: 1\n", 1},
		{"merge key", "a: &a {x: 1}\nb:\n  <<: *a\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.src))
			require.Error(t, err)

			var merr *Error
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tt.line, merr.Line)
			assert.Contains(t, err.Error(), "manifest: line")
			assert.ErrorIs(t, err, types.ErrInvalid)
		})
	}
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	_, err := Unmarshal([]byte("a: [1, 2\n"))
	require.Error(t, err)
	var merr *Error
	require.True(t, errors.As(err, &merr))
	assert.Contains(t, err.Error(), "manifest:")
}

func mustGet(t *testing.T, c *ess.Compound, name string) ess.Value {
	t.Helper()
	v, ok := c.Get(name)
	require.True(t, ok, "missing %q", name)
	return v
}
