// Package manifest converts compounds to and from a human-editable YAML
// form.
//
// A YAML mapping is a compound. Local tags select the value variant:
//
//	level: !i8 3
//	score: !i64 9000000000
//	ratio: !f32 0.25
//	name: !str Steve
//	icon: !bytes 3q2+7w==
//	path: !i32s [1, 2, 3]
//	tags: !strs [a, b]
//	items: !list
//	  - !str sword
//	  - count: 2
//
// Untagged scalars are inferred: integers become Int32 when they fit and
// Int64 otherwise, floats become Float64, booleans are rejected and
// everything else is a String. Untagged sequences become lists.
//
// Marshal always writes explicit tags, so Unmarshal(Marshal(c)) reproduces
// c exactly.
package manifest

import (
	"fmt"

	"github.com/joshuapare/esskit/pkg/types"
)

// Local tags understood by Unmarshal and written by Marshal.
const (
	TagInt8     = "!i8"
	TagInt16    = "!i16"
	TagInt32    = "!i32"
	TagInt64    = "!i64"
	TagFloat32  = "!f32"
	TagFloat64  = "!f64"
	TagString   = "!str"
	TagBytes    = "!bytes"
	TagInt16s   = "!i16s"
	TagInt32s   = "!i32s"
	TagInt64s   = "!i64s"
	TagFloat32s = "!f32s"
	TagFloat64s = "!f64s"
	TagStrings  = "!strs"
	TagList     = "!list"
)

// Core YAML tags as reported by yaml.Node.ShortTag.
const (
	yamlStr    = "!!str"
	yamlInt    = "!!int"
	yamlFloat  = "!!float"
	yamlBool   = "!!bool"
	yamlNull   = "!!null"
	yamlBinary = "!!binary"
	yamlMap    = "!!map"
	yamlSeq    = "!!seq"
	yamlMerge  = "!!merge"
)

// Error reports a manifest problem at a position in the YAML source.
// Line and Column are 1-based; zero means the position is unknown.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return "manifest: " + e.Msg
	}
	return fmt.Sprintf("manifest: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Is lets errors.Is(err, types.ErrInvalid) match manifest errors.
func (e *Error) Is(target error) bool {
	return target == types.ErrInvalid
}
