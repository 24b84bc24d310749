//go:build !linux && !freebsd && !darwin && !windows

package ess

import "os"

// flushFile falls back to os.File.Sync where no finer-grained call is wired.
func flushFile(f *os.File, _ bool) error {
	return f.Sync()
}
