//go:build windows

package ess

import (
	"os"

	"golang.org/x/sys/windows"
)

// flushFile pushes f's data and metadata to disk with FlushFileBuffers.
// The fullfsync parameter is ignored on Windows.
func flushFile(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
