package ess

import (
	"fmt"

	"github.com/joshuapare/esskit/internal/format"
	"github.com/joshuapare/esskit/pkg/types"
)

// encoder walks a value graph and emits the canonical wire form.
//
// Depth tracks container nesting:
//   - The root compound is depth 1.
//   - Each nested LIST or COMPOUND is one deeper than its parent.
//   - Scalars and arrays don't count.
type encoder struct {
	w        *format.Writer
	maxDepth int
}

func newEncoder(w *format.Writer, maxDepth int) *encoder {
	if maxDepth <= 0 {
		maxDepth = format.MaxDepth
	}
	return &encoder{w: w, maxDepth: maxDepth}
}

func (e *encoder) fail(kind types.ErrKind, msg string) {
	e.w.Fail(&types.Error{Kind: kind, Msg: msg})
}

func (e *encoder) writeRoot(c *Compound) error {
	e.w.WriteTag(format.RootTag)
	e.writeCompound(c, 1)
	return e.w.Err()
}

// writeValue emits v's tag and payload. depth is the level v occupies.
func (e *encoder) writeValue(v Value, depth int, path string) {
	if e.w.Err() != nil {
		return
	}
	if isNil(v) {
		e.fail(types.ErrKindInvalid, fmt.Sprintf("ess: nil value at %s", path))
		return
	}
	e.w.WriteTag(v.Tag())
	switch x := v.(type) {
	case List:
		e.writeList(x, depth, path)
	case *Compound:
		e.writeCompound(x, depth)
	default:
		writeLeaf(e.w, v)
	}
}

func (e *encoder) writeList(l List, depth int, path string) {
	if depth > e.maxDepth {
		e.fail(types.ErrKindLimit, fmt.Sprintf("ess: nesting deeper than %d at %s", e.maxDepth, path))
		return
	}
	e.w.WriteLen(len(l))
	for i, item := range l {
		e.writeValue(item, depth+1, fmt.Sprintf("%s[%d]", path, i))
	}
}

// writeCompound emits entries sorted by name so equal compounds always
// encode to identical bytes.
func (e *encoder) writeCompound(c *Compound, depth int) {
	if depth > e.maxDepth {
		e.fail(types.ErrKindLimit, fmt.Sprintf("ess: nesting deeper than %d", e.maxDepth))
		return
	}
	names := c.Names()
	e.w.WriteLen(len(names))
	for _, name := range names {
		if e.w.Err() != nil {
			return
		}
		e.w.WriteString(name)
		e.writeValue(c.m[name], depth+1, fmt.Sprintf("%q", name))
	}
}

// writeLeaf emits the payload of a non-container value.
func writeLeaf(w *format.Writer, v Value) {
	switch x := v.(type) {
	case Int8:
		w.WriteI8(int8(x))
	case Int16:
		w.WriteI16(int16(x))
	case Int32:
		w.WriteI32(int32(x))
	case Int64:
		w.WriteI64(int64(x))
	case Float32:
		w.WriteF32(float32(x))
	case Float64:
		w.WriteF64(float64(x))
	case String:
		w.WriteString(string(x))
	case Bytes:
		w.WriteBytes(x)
	case Int16s:
		w.WriteInt16s(x)
	case Int32s:
		w.WriteInt32s(x)
	case Int64s:
		w.WriteInt64s(x)
	case Float32s:
		w.WriteFloat32s(x)
	case Float64s:
		w.WriteFloat64s(x)
	case Strings:
		w.WriteStrings(x)
	default:
		w.Fail(&types.Error{Kind: types.ErrKindInvalid, Msg: fmt.Sprintf("ess: %s is not a leaf value", v.Tag())})
	}
}
