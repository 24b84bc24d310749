// Package mmfile maps compound files into memory read-only for decoding.
//
// Unix and Windows map the file; other platforms read it into a heap
// buffer. A mapped view stays valid until Close, but a file truncated by
// another process while mapped faults on access, so decoding of mapped
// bytes should run under Guard.
package mmfile

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
)

// ErrFault reports a memory fault while touching mapped bytes, typically
// because the file shrank underneath the mapping.
var ErrFault = errors.New("mmfile: fault reading mapped file")

// File is a read-only view of a file's contents.
type File struct {
	data    []byte
	release func() error
}

// Bytes returns the file contents. The slice, and any sub-slice of it, must
// not be used after Close.
func (f *File) Bytes() []byte { return f.data }

// Len returns the file size in bytes.
func (f *File) Len() int { return len(f.data) }

// Close releases the view. Calling Close more than once is a no-op.
func (f *File) Close() error {
	release := f.release
	f.data, f.release = nil, nil
	if release == nil {
		return nil
	}
	return release()
}

// Guard runs fn, turning a memory fault raised while fn reads the view into
// ErrFault. Other panics propagate unchanged.
func (f *File) Guard(fn func() error) (err error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fault, ok := r.(interface{ Addr() uintptr }); ok {
			err = fmt.Errorf("%w at 0x%x", ErrFault, fault.Addr())
			return
		}
		panic(r)
	}()
	return fn()
}

// regularSize returns the size of f, rejecting anything but regular files
// and sizes that do not fit an int.
func regularSize(f *os.File) (int, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("mmfile: %s is not a regular file", f.Name())
	}
	size := info.Size()
	if size > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("mmfile: %s too large to map (%d bytes)", f.Name(), size)
	}
	return int(size), nil
}
