package ess

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/joshuapare/esskit/internal/format"
	"github.com/joshuapare/esskit/pkg/types"
)

// WriteOptions controls how a compound is written.
type WriteOptions struct {
	// Level is the DEFLATE compression level handed to zlib unchanged
	// (zlib.HuffmanOnly through zlib.BestCompression).
	// Default: zlib.DefaultCompression
	Level int

	// MaxDepth bounds container nesting (0 = format.MaxDepth).
	// Default: 0
	MaxDepth int

	// Sync flushes file contents to stable storage before WriteFile returns.
	// Ignored by Write.
	// Default: false
	Sync bool

	// FullSync asks darwin for F_FULLFSYNC when Sync is set. Other
	// platforms ignore it.
	// Default: false
	FullSync bool

	// Atomic makes WriteFile stage the output in a temporary file next to
	// the destination and rename it into place, so a failed write leaves
	// the previous file untouched. When false, the destination is truncated
	// up front and a failure midway can leave a partial file.
	// Default: false
	Atomic bool
}

// DefaultWriteOptions returns the options used by Write and WriteFile.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Level: zlib.DefaultCompression,
	}
}

// ReadOptions controls how a compound is read.
type ReadOptions struct {
	// MaxDepth bounds container nesting (0 = format.MaxDepth).
	// Default: format.MaxDepth
	MaxDepth int
}

// DefaultReadOptions returns the options used by Read and ReadFile.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{MaxDepth: format.MaxDepth}
}

var errNilCompound = &types.Error{Kind: types.ErrKindInvalid, Msg: "ess: nil compound"}

// Write serializes c to w with default options. w is not closed.
func Write(w io.Writer, c *Compound) error {
	return WriteWithOptions(w, c, DefaultWriteOptions())
}

// WriteWithOptions serializes c to w. The compressor is always closed before
// returning, which flushes the zlib trailer to w on success; w itself is not
// closed.
func WriteWithOptions(w io.Writer, c *Compound, opts WriteOptions) error {
	if c == nil {
		return errNilCompound
	}
	zw, err := zlib.NewWriterLevel(w, opts.Level)
	if err != nil {
		return &types.Error{Kind: types.ErrKindInvalid, Msg: "ess: compression level", Err: err}
	}
	fw := format.NewWriter(zw)
	encErr := newEncoder(fw, opts.MaxDepth).writeRoot(c)
	closeErr := zw.Close()
	if encErr != nil {
		logMasked("write", encErr, closeErr)
		return writeError(encErr)
	}
	if closeErr != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "ess: flush compressed stream", Err: closeErr}
	}
	logger.Debug("compound written", "entries", c.Len(), "raw_bytes", fw.Written())
	return nil
}

// writeError classifies an encoder failure. Typed errors raised by the
// encoder pass through; anything else came from the destination.
func writeError(err error) error {
	var typed *types.Error
	switch {
	case errors.As(err, &typed):
		return err
	case errors.Is(err, format.ErrTooLong), errors.Is(err, format.ErrDepth):
		return &types.Error{Kind: types.ErrKindLimit, Msg: "ess: encode", Err: err}
	default:
		return &types.Error{Kind: types.ErrKindIO, Msg: "ess: write", Err: err}
	}
}

// Read reconstructs a compound from r with default options. r is not closed.
func Read(r io.Reader) (*Compound, error) {
	return ReadWithOptions(r, DefaultReadOptions())
}

// ReadWithOptions reconstructs a compound from r. It returns either a fully
// decoded compound or a nil compound and an error; never both. The
// decompressed stream must hold exactly one compound and nothing after it.
// When r implements io.ByteReader, bytes following the zlib trailer are left
// unread in r. Other sources are buffered and may be read past the trailer.
func ReadWithOptions(r io.Reader, opts ReadOptions) (*Compound, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, readError(err)
	}
	dec := newDecoder(format.NewReader(bufio.NewReader(zr)), opts.MaxDepth)
	c, decErr := dec.readRoot()
	closeErr := zr.Close()
	if decErr != nil {
		logMasked("read", decErr, closeErr)
		return nil, readError(decErr)
	}
	if closeErr != nil {
		return nil, readError(closeErr)
	}
	logger.Debug("compound read", "entries", dec.entries, "raw_bytes", dec.r.Consumed())
	return c, nil
}

// readError maps a decode failure onto the error kinds callers branch on.
func readError(err error) error {
	var (
		typed   *types.Error
		corrupt flate.CorruptInputError
	)
	kind := types.ErrKindIO
	switch {
	case errors.As(err, &typed):
		return err
	case errors.Is(err, zlib.ErrHeader),
		errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary),
		errors.As(err, &corrupt):
		kind = types.ErrKindFormat
	case errors.Is(err, format.ErrUnknownTag):
		kind = types.ErrKindUnsupported
	case errors.Is(err, format.ErrDepth), errors.Is(err, format.ErrTooLong):
		kind = types.ErrKindLimit
	case errors.Is(err, format.ErrTruncated),
		errors.Is(err, format.ErrRootTag),
		errors.Is(err, format.ErrTrailingData),
		errors.Is(err, format.ErrDuplicateName),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		kind = types.ErrKindCorrupt
	}
	return &types.Error{Kind: kind, Msg: "ess: decode", Err: err}
}

// Encode returns the serialized form of c.
func Encode(c *Compound) ([]byte, error) {
	var out bytes.Buffer
	if err := Write(&out, c); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode reconstructs a compound from data produced by Encode or Write.
func Decode(data []byte) (*Compound, error) {
	return Read(bytes.NewReader(data))
}
