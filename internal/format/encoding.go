package format

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/esskit/internal/buf"
	"github.com/joshuapare/esskit/pkg/types"
)

// Writer emits wire primitives to an underlying io.Writer.
//
// Like bufio.Writer, the first error is sticky: every later call is a no-op
// and Err reports it. Callers check Err once after a logical unit.
type Writer struct {
	w       io.Writer
	scratch [8]byte
	n       int64
	err     error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }

// Written returns the number of bytes handed to the underlying writer.
func (w *Writer) Written() int64 { return w.n }

// Fail records err as the sticky error unless one is already set.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = err
	}
}

// WriteTag writes a single tag byte.
func (w *Writer) WriteTag(t types.Tag) {
	w.scratch[0] = byte(t)
	w.write(w.scratch[:TagSize])
}

// WriteI8 writes a signed byte.
func (w *Writer) WriteI8(v int8) {
	w.scratch[0] = byte(v)
	w.write(w.scratch[:1])
}

// WriteI16 writes a big-endian int16.
func (w *Writer) WriteI16(v int16) {
	buf.PutU16BE(w.scratch[:2], uint16(v))
	w.write(w.scratch[:2])
}

// WriteI32 writes a big-endian int32.
func (w *Writer) WriteI32(v int32) {
	buf.PutU32BE(w.scratch[:4], uint32(v))
	w.write(w.scratch[:4])
}

// WriteI64 writes a big-endian int64.
func (w *Writer) WriteI64(v int64) {
	buf.PutU64BE(w.scratch[:8], uint64(v))
	w.write(w.scratch[:8])
}

// WriteF32 writes the IEEE-754 bits of v.
func (w *Writer) WriteF32(v float32) {
	buf.PutU32BE(w.scratch[:4], math.Float32bits(v))
	w.write(w.scratch[:4])
}

// WriteF64 writes the IEEE-754 bits of v.
func (w *Writer) WriteF64(v float64) {
	buf.PutU64BE(w.scratch[:8], math.Float64bits(v))
	w.write(w.scratch[:8])
}

// WriteLen writes a u32 length or count prefix.
func (w *Writer) WriteLen(n int) {
	if n < 0 || uint64(n) > MaxLen {
		w.Fail(fmt.Errorf("%w: %d", ErrTooLong, n))
		return
	}
	buf.PutU32BE(w.scratch[:LenSize], uint32(n))
	w.write(w.scratch[:LenSize])
}

// WriteString writes a length-prefixed string.
func (w *Writer) WriteString(s string) {
	w.WriteLen(len(s))
	if w.err != nil || len(s) == 0 {
		return
	}
	if sw, ok := w.w.(io.StringWriter); ok {
		n, err := sw.WriteString(s)
		w.n += int64(n)
		if err != nil {
			w.err = err
		}
		return
	}
	w.write([]byte(s))
}

// WriteBytes writes a length-prefixed byte sequence.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteLen(len(b))
	if len(b) > 0 {
		w.write(b)
	}
}

// WriteInt16s writes a counted int16 array.
func (w *Writer) WriteInt16s(vs []int16) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteI16(v)
	}
}

// WriteInt32s writes a counted int32 array.
func (w *Writer) WriteInt32s(vs []int32) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteI32(v)
	}
}

// WriteInt64s writes a counted int64 array.
func (w *Writer) WriteInt64s(vs []int64) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteI64(v)
	}
}

// WriteFloat32s writes a counted float32 array.
func (w *Writer) WriteFloat32s(vs []float32) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteF32(v)
	}
}

// WriteFloat64s writes a counted float64 array.
func (w *Writer) WriteFloat64s(vs []float64) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteF64(v)
	}
}

// WriteStrings writes a counted array of length-prefixed strings.
func (w *Writer) WriteStrings(vs []string) {
	w.WriteLen(len(vs))
	for _, v := range vs {
		if w.err != nil {
			return
		}
		w.WriteString(v)
	}
}
