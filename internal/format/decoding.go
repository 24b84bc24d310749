package format

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/joshuapare/esskit/internal/buf"
	"github.com/joshuapare/esskit/pkg/types"
)

// Reader decodes wire primitives from an underlying io.Reader.
//
// End of input in the middle of a primitive is reported as ErrTruncated.
// Any other error from the underlying reader is returned unchanged so the
// caller can tell decompression and I/O failures apart.
type Reader struct {
	r       io.Reader
	scratch [8]byte
	n       int64
}

// NewReader returns a Reader consuming r. Wrap r in a bufio.Reader when it
// does not buffer on its own; primitives are read a few bytes at a time.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int64 { return r.n }

func (r *Reader) fill(p []byte) error {
	n, err := io.ReadFull(r.r, p)
	r.n += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: wanted %d bytes at offset %d, got %d", ErrTruncated, len(p), r.n-int64(n), n)
	}
	return err
}

// ReadTag reads a tag byte and rejects anything outside the assigned set.
func (r *Reader) ReadTag() (types.Tag, error) {
	if err := r.fill(r.scratch[:TagSize]); err != nil {
		return types.TagInvalid, err
	}
	t := types.Tag(r.scratch[0])
	if !t.Valid() {
		return t, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownTag, r.scratch[0], r.n-1)
	}
	return t, nil
}

// AtEOF reports whether the underlying reader has no bytes left. It consumes
// one byte when input remains, so it is only meaningful once decoding is done.
func (r *Reader) AtEOF() (bool, error) {
	n, err := io.ReadFull(r.r, r.scratch[:1])
	r.n += int64(n)
	switch {
	case n == 1:
		return false, nil
	case errors.Is(err, io.EOF):
		return true, nil
	default:
		return false, err
	}
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() (int8, error) {
	if err := r.fill(r.scratch[:1]); err != nil {
		return 0, err
	}
	return int8(r.scratch[0]), nil
}

// ReadI16 reads a big-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	if err := r.fill(r.scratch[:2]); err != nil {
		return 0, err
	}
	return int16(buf.U16BE(r.scratch[:2])), nil
}

// ReadI32 reads a big-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	if err := r.fill(r.scratch[:4]); err != nil {
		return 0, err
	}
	return int32(buf.U32BE(r.scratch[:4])), nil
}

// ReadI64 reads a big-endian int64.
func (r *Reader) ReadI64() (int64, error) {
	if err := r.fill(r.scratch[:8]); err != nil {
		return 0, err
	}
	return int64(buf.U64BE(r.scratch[:8])), nil
}

// ReadF32 reads IEEE-754 float32 bits.
func (r *Reader) ReadF32() (float32, error) {
	if err := r.fill(r.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(buf.U32BE(r.scratch[:4])), nil
}

// ReadF64 reads IEEE-754 float64 bits.
func (r *Reader) ReadF64() (float64, error) {
	if err := r.fill(r.scratch[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(buf.U64BE(r.scratch[:8])), nil
}

// ReadLen reads a u32 length or count prefix.
func (r *Reader) ReadLen() (uint32, error) {
	if err := r.fill(r.scratch[:LenSize]); err != nil {
		return 0, err
	}
	return buf.U32BE(r.scratch[:LenSize]), nil
}

// readN reads exactly n bytes, growing the destination in bounded steps so
// a forged length fails on truncation instead of on allocation.
func (r *Reader) readN(n uint64) ([]byte, error) {
	if n > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, n)
	}
	out := make([]byte, 0, buf.Prealloc(n, MaxPreallocBytes))
	for uint64(len(out)) < n {
		start := len(out)
		step := int(min(n-uint64(start), MaxPreallocBytes))
		end, ok := buf.AddOverflowSafe(start, step)
		if !ok {
			return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, n)
		}
		out = slices.Grow(out, step)[:end]
		if err := r.fill(out[start:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// readFixed reads a counted array of fixed-width elements as raw bytes. The
// element width comes from the array tag.
func (r *Reader) readFixed(tag types.Tag) ([]byte, int, error) {
	width := ElemSize(tag)
	if width == 0 {
		return nil, 0, fmt.Errorf("%w: %s has no fixed element width", ErrUnknownTag, tag)
	}
	count, err := r.ReadLen()
	if err != nil {
		return nil, 0, err
	}
	total, ok := buf.MulOverflowSafe(int(count), width)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d elements of %d bytes", ErrTooLong, count, width)
	}
	raw, err := r.readN(uint64(total))
	if err != nil {
		return nil, 0, err
	}
	return raw, int(count), nil
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadLen()
	if err != nil {
		return "", err
	}
	raw, err := r.readN(uint64(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ReadBytes reads a length-prefixed byte sequence.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	return r.readN(uint64(n))
}

// ReadInt16s reads a counted int16 array.
func (r *Reader) ReadInt16s() ([]int16, error) {
	raw, count, err := r.readFixed(types.TagInt16s)
	if err != nil {
		return nil, err
	}
	out := make([]int16, count)
	for i := range out {
		out[i] = int16(buf.U16BE(raw[i*2:]))
	}
	return out, nil
}

// ReadInt32s reads a counted int32 array.
func (r *Reader) ReadInt32s() ([]int32, error) {
	raw, count, err := r.readFixed(types.TagInt32s)
	if err != nil {
		return nil, err
	}
	out := make([]int32, count)
	for i := range out {
		out[i] = int32(buf.U32BE(raw[i*4:]))
	}
	return out, nil
}

// ReadInt64s reads a counted int64 array.
func (r *Reader) ReadInt64s() ([]int64, error) {
	raw, count, err := r.readFixed(types.TagInt64s)
	if err != nil {
		return nil, err
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(buf.U64BE(raw[i*8:]))
	}
	return out, nil
}

// ReadFloat32s reads a counted float32 array.
func (r *Reader) ReadFloat32s() ([]float32, error) {
	raw, count, err := r.readFixed(types.TagFloat32s)
	if err != nil {
		return nil, err
	}
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(buf.U32BE(raw[i*4:]))
	}
	return out, nil
}

// ReadFloat64s reads a counted float64 array.
func (r *Reader) ReadFloat64s() ([]float64, error) {
	raw, count, err := r.readFixed(types.TagFloat64s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(buf.U64BE(raw[i*8:]))
	}
	return out, nil
}

// ReadStrings reads a counted array of length-prefixed strings.
func (r *Reader) ReadStrings() ([]string, error) {
	count, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, buf.Prealloc(uint64(count), MaxPrealloc))
	for range count {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
