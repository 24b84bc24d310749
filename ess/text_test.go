package ess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, `{"TestInteger": 1337, "TestString": "Hello World!"}`, sampleCompound(t).String())
	assert.Equal(t, "{}", New().String())

	var nilC *Compound
	assert.Equal(t, "{}", nilC.String())
}

func TestString_Variants(t *testing.T) {
	c := New()
	c.SetInt8("a", 1)
	c.SetInt16("b", 2)
	c.SetInt64("c", 3)
	c.SetFloat32("d", 1.5)
	c.SetFloat64("e", 2.5)
	c.SetBytes("f", []byte{1, 2})
	c.SetInt32s("g", []int32{7})
	c.SetStrings("h", []string{"x"})
	c.SetList("i", Int32(1), String("y"))
	child := New()
	child.SetInt("z", 0)
	c.SetCompound("j", child)
	c.SetFloat64s("k", nil)

	want := `{"a": 1b, "b": 2s, "c": 3L, "d": 1.5f, "e": 2.5d, "f": [B; 1, 2], "g": [I; 7], ` +
		`"h": [T; "x"], "i": [1, "y"], "j": {"z": 0}, "k": [D;]}`
	assert.Equal(t, want, c.String())
}

func TestString_SelfReferenceTerminates(t *testing.T) {
	c := New()
	c.SetCompound("self", c)
	assert.NotPanics(t, func() { _ = c.String() })
	assert.Contains(t, c.String(), "{...}")
}
