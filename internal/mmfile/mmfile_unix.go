//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The mapping keeps the pages alive once the descriptor is closed.
	defer f.Close()

	size, err := regularSize(f)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &File{data: []byte{}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	// Decoding reads front to back; the hint is advisory.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &File{
		data:    data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}
