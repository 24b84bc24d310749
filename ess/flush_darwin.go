//go:build darwin

package ess

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes f's data to stable storage.
//
// On macOS, if fullfsync is true, use F_FULLFSYNC so the data reaches the
// physical disk, not just the drive cache. Otherwise, use regular fsync.
func flushFile(f *os.File, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
