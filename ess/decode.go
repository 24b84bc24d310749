package ess

import (
	"fmt"

	"github.com/joshuapare/esskit/internal/buf"
	"github.com/joshuapare/esskit/internal/format"
	"github.com/joshuapare/esskit/pkg/types"
)

// decoder rebuilds a value graph from the canonical wire form. Depth
// semantics mirror the encoder.
type decoder struct {
	r        *format.Reader
	maxDepth int
	entries  int
}

func newDecoder(r *format.Reader, maxDepth int) *decoder {
	if maxDepth <= 0 {
		maxDepth = format.MaxDepth
	}
	return &decoder{r: r, maxDepth: maxDepth}
}

// readRoot decodes the root compound and requires the stream to end right
// after it.
func (d *decoder) readRoot() (*Compound, error) {
	tag, err := d.r.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag != format.RootTag {
		return nil, fmt.Errorf("%w: got %s", format.ErrRootTag, tag)
	}
	c, err := d.readCompound(1)
	if err != nil {
		return nil, err
	}
	eof, err := d.r.AtEOF()
	if err != nil {
		return nil, err
	}
	if !eof {
		return nil, fmt.Errorf("%w: at offset %d", format.ErrTrailingData, d.r.Consumed()-1)
	}
	return c, nil
}

func (d *decoder) readValue(tag types.Tag, depth int) (Value, error) {
	switch tag {
	case types.TagInt8:
		v, err := d.r.ReadI8()
		return Int8(v), err
	case types.TagInt16:
		v, err := d.r.ReadI16()
		return Int16(v), err
	case types.TagInt32:
		v, err := d.r.ReadI32()
		return Int32(v), err
	case types.TagInt64:
		v, err := d.r.ReadI64()
		return Int64(v), err
	case types.TagFloat32:
		v, err := d.r.ReadF32()
		return Float32(v), err
	case types.TagFloat64:
		v, err := d.r.ReadF64()
		return Float64(v), err
	case types.TagString:
		v, err := d.r.ReadString()
		return String(v), err
	case types.TagBytes:
		v, err := d.r.ReadBytes()
		return Bytes(v), err
	case types.TagInt16s:
		v, err := d.r.ReadInt16s()
		return Int16s(v), err
	case types.TagInt32s:
		v, err := d.r.ReadInt32s()
		return Int32s(v), err
	case types.TagInt64s:
		v, err := d.r.ReadInt64s()
		return Int64s(v), err
	case types.TagFloat32s:
		v, err := d.r.ReadFloat32s()
		return Float32s(v), err
	case types.TagFloat64s:
		v, err := d.r.ReadFloat64s()
		return Float64s(v), err
	case types.TagStrings:
		v, err := d.r.ReadStrings()
		return Strings(v), err
	case types.TagList:
		return d.readList(depth)
	case types.TagCompound:
		return d.readCompound(depth)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnknownTag, tag)
	}
}

func (d *decoder) readList(depth int) (List, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: %d", format.ErrDepth, depth)
	}
	count, err := d.r.ReadLen()
	if err != nil {
		return nil, err
	}
	list := make(List, 0, buf.Prealloc(uint64(count), format.MaxPrealloc))
	for i := range count {
		tag, err := d.r.ReadTag()
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		v, err := d.readValue(tag, depth+1)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		list = append(list, v)
	}
	return list, nil
}

func (d *decoder) readCompound(depth int) (*Compound, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: %d", format.ErrDepth, depth)
	}
	count, err := d.r.ReadLen()
	if err != nil {
		return nil, err
	}
	m := make(map[string]Value, buf.Prealloc(uint64(count), format.MaxPrealloc))
	for range count {
		name, err := d.r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, dup := m[name]; dup {
			return nil, fmt.Errorf("%w: %q", format.ErrDuplicateName, name)
		}
		tag, err := d.r.ReadTag()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		v, err := d.readValue(tag, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		m[name] = v
		d.entries++
	}
	return &Compound{m: m}, nil
}
