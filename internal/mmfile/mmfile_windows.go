//go:build windows

package mmfile

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open maps the file at path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := regularSize(f)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &File{data: []byte{}}, nil
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, &os.PathError{Op: "CreateFileMapping", Path: path, Err: err}
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	// The view holds its own reference to the mapping object.
	_ = windows.CloseHandle(h)
	if err != nil {
		return nil, &os.PathError{Op: "MapViewOfFile", Path: path, Err: err}
	}

	return &File{
		data:    unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
		release: func() error { return windows.UnmapViewOfFile(addr) },
	}, nil
}
