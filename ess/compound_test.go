package ess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/esskit/pkg/types"
)

// ============================================================================
// Typed access
// ============================================================================

func TestTypedGetters_SampleScenario(t *testing.T) {
	c := sampleCompound(t)

	assert.Equal(t, int32(1337), c.GetInt("TestInteger"))
	assert.Equal(t, "Hello World!", c.GetString("TestString"))
	assert.Equal(t, int32(0), c.GetInt("TestString"))
	assert.Equal(t, "", c.GetString("TestInteger"))
}

func TestTypedGetters_SoftMiss(t *testing.T) {
	c := allVariants(t)
	names := append(c.Names(), "absent", "")

	// Every getter on every name, present or not, must return without
	// panicking, and must return the zero value unless the variant matches.
	for _, name := range names {
		stored, _ := c.Get(name)
		tag := types.TagInvalid
		if stored != nil {
			tag = stored.Tag()
		}

		t.Run(name, func(t *testing.T) {
			if tag != types.TagInt8 {
				assert.Zero(t, c.GetInt8(name))
			}
			if tag != types.TagInt16 {
				assert.Zero(t, c.GetInt16(name))
			}
			if tag != types.TagInt32 {
				assert.Zero(t, c.GetInt(name))
			}
			if tag != types.TagInt64 {
				assert.Zero(t, c.GetInt64(name))
			}
			if tag != types.TagFloat32 {
				assert.Zero(t, c.GetFloat32(name))
			}
			if tag != types.TagFloat64 {
				assert.Zero(t, c.GetFloat64(name))
			}
			if tag != types.TagString {
				assert.Equal(t, "", c.GetString(name))
			}
			if tag != types.TagBytes {
				assert.Empty(t, c.GetBytes(name))
			}
			if tag != types.TagInt16s {
				assert.Empty(t, c.GetInt16s(name))
			}
			if tag != types.TagInt32s {
				assert.Empty(t, c.GetInt32s(name))
			}
			if tag != types.TagInt64s {
				assert.Empty(t, c.GetInt64s(name))
			}
			if tag != types.TagFloat32s {
				assert.Empty(t, c.GetFloat32s(name))
			}
			if tag != types.TagFloat64s {
				assert.Empty(t, c.GetFloat64s(name))
			}
			if tag != types.TagStrings {
				assert.Empty(t, c.GetStrings(name))
			}
			if tag != types.TagList {
				assert.Nil(t, c.GetList(name))
			}
			if tag != types.TagCompound {
				assert.Nil(t, c.GetCompound(name))
			}
		})
	}
}

func TestTypedGetters_NilCompound(t *testing.T) {
	var c *Compound

	assert.Zero(t, c.GetInt("x"))
	assert.Equal(t, "", c.GetString("x"))
	assert.Nil(t, c.GetCompound("x"))
	assert.Nil(t, c.GetList("x"))
	assert.False(t, c.Has("x"))
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Names())
	assert.Empty(t, c.Values())
	_, ok := c.Get("x")
	assert.False(t, ok)
}

func TestGetAs(t *testing.T) {
	c := allVariants(t)

	assert.Equal(t, Int32(1337), GetAs[Int32](c, "i32"))
	assert.Equal(t, Int16(0), GetAs[Int16](c, "i32"))
	assert.Equal(t, Strings{"a", "", "ccc"}, GetAs[Strings](c, "strs"))
	assert.Nil(t, GetAs[*Compound](c, "strs"))
	assert.NotNil(t, GetAs[*Compound](c, "inner"))
	assert.Equal(t, "inner", GetAs[*Compound](c, "inner").GetString("name"))
}

// ============================================================================
// Mutation
// ============================================================================

func TestSet_Overwrite(t *testing.T) {
	c := New()
	c.SetInt("k", 1)
	require.Equal(t, 1, c.Len())

	c.SetString("k", "now a string")
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, String("now a string"), v)
	assert.Equal(t, 1, c.Len(), "overwrite must not change size")
	assert.Zero(t, c.GetInt("k"))

	c.SetInt("other", 2)
	assert.Equal(t, 2, c.Len(), "new name grows size by one")
}

func TestSet_NilRemoves(t *testing.T) {
	c := New()
	c.SetInt("k", 1)
	c.Set("k", nil)
	assert.False(t, c.Has("k"))

	c.SetCompound("child", New())
	c.SetCompound("child", nil)
	assert.False(t, c.Has("child"))
}

func TestZeroValueCompound(t *testing.T) {
	var c Compound
	c.SetInt("k", 7)
	assert.Equal(t, int32(7), c.GetInt("k"))
	assert.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	c := sampleCompound(t)

	c.Remove("absent")
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Has("absent"))

	c.Remove("TestInteger")
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Has("TestInteger"))

	c.Remove("TestInteger")
	assert.Equal(t, 1, c.Len())
}

func TestReplace(t *testing.T) {
	c := sampleCompound(t)

	prev, ok := c.Replace("TestInteger", Int64(9))
	require.True(t, ok)
	assert.Equal(t, Int32(1337), prev)
	assert.Equal(t, int64(9), c.GetInt64("TestInteger"))

	prev, ok = c.Replace("absent", Int32(1))
	assert.False(t, ok)
	assert.Nil(t, prev)
	assert.False(t, c.Has("absent"))
	assert.Equal(t, 2, c.Len())

	_, ok = c.Replace("TestString", nil)
	assert.False(t, ok)
	assert.Equal(t, "Hello World!", c.GetString("TestString"))
}

func TestClear(t *testing.T) {
	c := allVariants(t)
	require.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Names())

	c.SetInt("again", 1)
	assert.Equal(t, 1, c.Len())
}

func TestFromMap(t *testing.T) {
	m := map[string]Value{
		"a":    Int32(1),
		"nil":  nil,
		"nilc": (*Compound)(nil),
	}
	c := FromMap(m)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int32(1), c.GetInt("a"))

	// The map is adopted, not copied.
	m["b"] = String("shared")
	assert.Equal(t, "shared", c.GetString("b"))

	assert.True(t, FromMap(nil).IsEmpty())
}

// ============================================================================
// Queries
// ============================================================================

func TestNamesAndValues(t *testing.T) {
	c := New()
	c.SetInt("b", 2)
	c.SetInt("a", 1)
	c.SetInt("c", 3)

	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
	assert.ElementsMatch(t, []Value{Int32(1), Int32(2), Int32(3)}, c.Values())
}

func TestHasValue(t *testing.T) {
	c := allVariants(t)

	assert.True(t, c.HasValue(Int32(1337)))
	assert.False(t, c.HasValue(Int64(1337)), "same number, different variant")
	assert.True(t, c.HasValue(Int32s{200, 200, 208, 208, 203, 205, 203, 205, 48, 30}))
	assert.True(t, c.HasValue(c.GetCompound("inner").Clone()), "deep compound equality")
	assert.True(t, c.HasValue(Float64(math.Inf(-1))))
	assert.False(t, c.HasValue(String("missing")))
	assert.False(t, c.HasValue(nil))
}

// ============================================================================
// Traversal
// ============================================================================

func TestForEach_VisitsSnapshot(t *testing.T) {
	c := New()
	c.SetInt("a", 1)
	c.SetInt("b", 2)
	c.SetInt("c", 3)

	seen := map[string]Value{}
	c.ForEach(func(name string, v Value) {
		seen[name] = v
		// Mutating during traversal is allowed and does not change what
		// is visited.
		c.Remove("a")
		c.Remove("b")
		c.Remove("c")
		c.SetInt("added-"+name, 0)
	})

	assert.Equal(t, map[string]Value{"a": Int32(1), "b": Int32(2), "c": Int32(3)}, seen)
	assert.ElementsMatch(t, []string{"added-a", "added-b", "added-c"}, c.Names())
}

func TestForEach_Empty(t *testing.T) {
	calls := 0
	New().ForEach(func(string, Value) { calls++ })
	var nilC *Compound
	nilC.ForEach(func(string, Value) { calls++ })
	assert.Zero(t, calls)
}

func TestAll_FreshIteratorEachCall(t *testing.T) {
	c := sampleCompound(t)

	count := func() int {
		n := 0
		for range c.All() {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count(), "iterator is restartable")

	// Early break stops the iteration.
	n := 0
	for range c.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestAll_LiveView(t *testing.T) {
	c := sampleCompound(t)
	seq := c.All()
	c.SetInt("third", 3)

	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 3, n, "iterator reflects the live map when it starts")
}

func TestEntries(t *testing.T) {
	c := sampleCompound(t)
	got := map[string]Value{}
	for name, v := range c.Entries() {
		got[name] = v
	}
	assert.Equal(t, map[string]Value{
		"TestInteger": Int32(1337),
		"TestString":  String("Hello World!"),
	}, got)
}

// ============================================================================
// Clone
// ============================================================================

func TestClone_ShallowSharing(t *testing.T) {
	child := New()
	child.SetInt("n", 1)

	orig := New()
	orig.SetInt("scalar", 1)
	orig.SetCompound("child", child)

	cl := orig.Clone()
	require.True(t, cl.Equal(orig))

	// Top-level replacement through the original is not seen by the clone.
	orig.SetInt("scalar", 2)
	assert.Equal(t, int32(1), cl.GetInt("scalar"))

	// In-place mutation of a shared nested compound is seen by both.
	orig.GetCompound("child").SetInt("n", 99)
	assert.Equal(t, int32(99), cl.GetCompound("child").GetInt("n"))

	// Removing from the clone leaves the original alone.
	cl.Remove("child")
	assert.True(t, orig.Has("child"))
}

func TestClone_Empty(t *testing.T) {
	var c *Compound
	cl := c.Clone()
	require.NotNil(t, cl)
	assert.True(t, cl.IsEmpty())
	cl.SetInt("x", 1)
	assert.Equal(t, 1, cl.Len())
}
