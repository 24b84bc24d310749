package ess

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/joshuapare/esskit/internal/mmfile"
	"github.com/joshuapare/esskit/pkg/types"
)

// WriteFile writes c to path with default options, creating the file or
// truncating an existing one.
func WriteFile(path string, c *Compound) error {
	return WriteFileWithOptions(path, c, DefaultWriteOptions())
}

// WriteFileWithOptions writes c to path. The file is closed on every exit
// path. Without opts.Atomic a failure midway leaves whatever was written so
// far at path.
func WriteFileWithOptions(path string, c *Compound, opts WriteOptions) error {
	if c == nil {
		return errNilCompound
	}
	if opts.Atomic {
		return writeFileAtomic(path, c, opts)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "ess: create file", Err: err}
	}
	return writeAndClose(f, c, opts)
}

// writeAndClose encodes c into f, optionally syncs it, and always closes f.
func writeAndClose(f *os.File, c *Compound, opts WriteOptions) error {
	err := WriteWithOptions(f, c, opts)
	if err == nil && opts.Sync {
		if syncErr := flushFile(f, opts.FullSync); syncErr != nil {
			err = &types.Error{Kind: types.ErrKindIO, Msg: "ess: sync " + f.Name(), Err: syncErr}
		}
	}
	closeErr := f.Close()
	if err != nil {
		logMasked("close "+f.Name(), err, closeErr)
		return err
	}
	if closeErr != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "ess: close " + f.Name(), Err: closeErr}
	}
	return nil
}

func writeFileAtomic(path string, c *Compound, opts WriteOptions) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "ess: create temp file for " + path, Err: err}
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		logger.Debug("chmod temp file", "path", tmpName, "error", err)
	}
	if err := writeAndClose(tmp, c, opts); err != nil {
		logMasked("remove "+tmpName, err, os.Remove(tmpName))
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		renameErr := &types.Error{Kind: types.ErrKindIO, Msg: "ess: rename into " + path, Err: err}
		logMasked("remove "+tmpName, renameErr, os.Remove(tmpName))
		return renameErr
	}
	return nil
}

// ReadFile reads the compound stored at path with default options.
func ReadFile(path string) (*Compound, error) {
	return ReadFileWithOptions(path, DefaultReadOptions())
}

// ReadFileWithOptions reads the compound stored at path. The file is mapped
// read-only for the duration of the call and unmapped before returning. A
// file that shrinks while it is being decoded yields an ErrKindIO failure.
func ReadFileWithOptions(path string, opts ReadOptions) (*Compound, error) {
	f, err := mmfile.Open(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "ess: read file", Err: err}
	}
	var c *Compound
	err = f.Guard(func() error {
		var readErr error
		c, readErr = ReadWithOptions(bytes.NewReader(f.Bytes()), opts)
		return readErr
	})
	if errors.Is(err, mmfile.ErrFault) {
		err = &types.Error{Kind: types.ErrKindIO, Msg: "ess: read " + path, Err: err}
	}
	closeErr := f.Close()
	if err != nil {
		logMasked("unmap "+path, err, closeErr)
		return nil, err
	}
	if closeErr != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "ess: unmap " + path, Err: closeErr}
	}
	return c, nil
}
