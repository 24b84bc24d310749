package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO          ErrKind = iota // open/create/write/close/sync on the underlying file or stream
	ErrKindFormat                     // compressed layer is not valid zlib/DEFLATE
	ErrKindCorrupt                    // truncated or structurally inconsistent payload
	ErrKindUnsupported                // tag byte outside the known set
	ErrKindLimit                      // depth or length limit exceeded
	ErrKindInvalid                    // caller handed the encoder something it cannot write
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindLimit:
		return "limit"
	case ErrKindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, types.ErrCorrupt) matches every corrupt-payload error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels commonly returned by implementations. Compare with errors.Is.
var (
	// ErrIO indicates the underlying file or stream failed.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrFormat indicates the input is not a zlib/DEFLATE stream.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "not a compressed compound stream"}
	// ErrCorrupt indicates the decompressed payload is malformed.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt compound payload"}
	// ErrUnsupported indicates an unknown value tag.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported value tag"}
	// ErrLimit indicates a nesting or length limit was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
	// ErrInvalid indicates the value graph cannot be encoded as given.
	ErrInvalid = &Error{Kind: ErrKindInvalid, Msg: "invalid value"}
)

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == k {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// -----------------------------------------------------------------------------
// Value Tags
// -----------------------------------------------------------------------------

// Tag identifies which variant of the closed value set a value belongs to.
// The numbers are the tag bytes written on the wire.
type Tag uint8

const (
	TagInvalid  Tag = 0x00 // reserved, never valid on the wire
	TagInt8     Tag = 0x01
	TagInt16    Tag = 0x02
	TagInt32    Tag = 0x03
	TagInt64    Tag = 0x04
	TagFloat32  Tag = 0x05
	TagFloat64  Tag = 0x06
	TagString   Tag = 0x07
	TagBytes    Tag = 0x08
	TagInt16s   Tag = 0x09
	TagInt32s   Tag = 0x0A
	TagInt64s   Tag = 0x0B
	TagFloat32s Tag = 0x0C
	TagFloat64s Tag = 0x0D
	TagStrings  Tag = 0x0E
	TagList     Tag = 0x0F
	TagCompound Tag = 0x10

	// TagMax is the highest assigned tag.
	TagMax = TagCompound
)

// Valid reports whether t is one of the assigned tags.
func (t Tag) Valid() bool {
	return t > TagInvalid && t <= TagMax
}

// String implements the Stringer interface for Tag
func (t Tag) String() string {
	switch t {
	case TagInvalid:
		return "INVALID"
	case TagInt8:
		return "INT8"
	case TagInt16:
		return "INT16"
	case TagInt32:
		return "INT32"
	case TagInt64:
		return "INT64"
	case TagFloat32:
		return "FLOAT32"
	case TagFloat64:
		return "FLOAT64"
	case TagString:
		return "STRING"
	case TagBytes:
		return "BYTES"
	case TagInt16s:
		return "INT16_ARRAY"
	case TagInt32s:
		return "INT32_ARRAY"
	case TagInt64s:
		return "INT64_ARRAY"
	case TagFloat32s:
		return "FLOAT32_ARRAY"
	case TagFloat64s:
		return "FLOAT64_ARRAY"
	case TagStrings:
		return "STRING_ARRAY"
	case TagList:
		return "LIST"
	case TagCompound:
		return "COMPOUND"
	default:
		return fmt.Sprintf("UNKNOWN_TAG_0x%02X", uint8(t))
	}
}
