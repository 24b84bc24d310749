// Package format houses the canonical wire format for serialized compounds:
// the tag-prefixed, big-endian encoding that sits inside the DEFLATE layer.
// It knows nothing about the public value types, only about tags, lengths and
// fixed-width payloads, so higher-level packages can orchestrate the value
// graph in a more ergonomic form.
//
// Stream layout (after decompression):
//
//	0x10 [compound payload]
//
// Payloads:
//
//	INT8/16/32/64        1/2/4/8 bytes, two's complement, big-endian
//	FLOAT32/64           IEEE-754 bits, 4/8 bytes, big-endian
//	STRING, BYTES        u32 length, raw bytes
//	*_ARRAY (numeric)    u32 count, count fixed-width elements
//	STRING_ARRAY         u32 count, count STRING payloads
//	LIST                 u32 count, count (tag, payload) pairs
//	COMPOUND             u32 count, count (name STRING payload, tag, payload)
package format

import (
	"math"

	"github.com/joshuapare/esskit/pkg/types"
)

const (
	// RootTag is the only tag allowed at the start of a decompressed stream.
	RootTag = types.TagCompound

	// TagSize is the size of a tag on the wire.
	TagSize = 1

	// LenSize is the size of every length or count prefix.
	LenSize = 4

	// MaxLen is the largest length or count a prefix can carry.
	MaxLen = math.MaxUint32

	// MaxDepth bounds LIST/COMPOUND nesting on encode and decode. The root
	// compound is depth 1.
	MaxDepth = 512

	// MaxPrealloc caps how many elements a decoder reserves before the data
	// backing them has actually been read.
	MaxPrealloc = 1 << 16

	// MaxPreallocBytes caps how many bytes a decoder reserves per read step
	// for STRING and BYTES payloads.
	MaxPreallocBytes = 1 << 20
)

// ElemSize returns the fixed payload width of a scalar tag, or of one
// element of a numeric array tag. It returns 0 for variable-width tags.
func ElemSize(t types.Tag) int {
	switch t {
	case types.TagInt8:
		return 1
	case types.TagInt16, types.TagInt16s:
		return 2
	case types.TagInt32, types.TagFloat32, types.TagInt32s, types.TagFloat32s:
		return 4
	case types.TagInt64, types.TagFloat64, types.TagInt64s, types.TagFloat64s:
		return 8
	default:
		return 0
	}
}
