//go:build linux || freebsd

package ess

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes f's data to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
// The fullfsync parameter is ignored.
func flushFile(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
