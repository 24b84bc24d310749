package format

import "errors"

var (
	// ErrTruncated indicates the stream ended before a payload was complete.
	ErrTruncated = errors.New("format: truncated payload")
	// ErrUnknownTag indicates a tag byte outside the assigned set.
	ErrUnknownTag = errors.New("format: unknown tag")
	// ErrRootTag indicates the stream does not start with a compound.
	ErrRootTag = errors.New("format: root is not a compound")
	// ErrTrailingData indicates bytes remained after the root compound.
	ErrTrailingData = errors.New("format: trailing data after root compound")
	// ErrDuplicateName indicates a compound payload repeated a name.
	ErrDuplicateName = errors.New("format: duplicate name in compound")
	// ErrDepth indicates nesting beyond MaxDepth.
	ErrDepth = errors.New("format: nesting exceeds max depth")
	// ErrTooLong indicates a length or count that does not fit the prefix
	// or the host's int.
	ErrTooLong = errors.New("format: length exceeds limit")
)
