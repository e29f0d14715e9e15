// Package filler writes placeholder files of an exact size.
package filler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Fill is the byte every generated file is made of (ASCII '0').
const Fill byte = '0'

// maxBufSize caps the write buffer so large files do not need a buffer of their size.
const maxBufSize = 1 << 20

var (
	// ErrZeroSize is returned when asked to write an empty file.
	ErrZeroSize = errors.New("size must be greater than zero")
	// ErrSizeMismatch is returned when the file on disk differs from the requested size.
	ErrSizeMismatch = errors.New("size mismatch after write")
)

// Write creates or truncates path and fills it with exactly n bytes of Fill,
// then checks the size on disk. Parent directories are not created.
func Write(path string, n uint64) error {
	if n == 0 {
		return ErrZeroSize
	}

	if err := writeFile(path, n); err != nil {
		return err
	}
	return Verify(path, n)
}

// Verify checks that the file at path is exactly n bytes long.
func Verify(path string, n uint64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() < 0 || uint64(info.Size()) != n {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrSizeMismatch, path, info.Size(), n)
	}
	return nil
}

// writeFile streams n fill bytes to path and closes the handle on every path.
func writeFile(path string, n uint64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bufSize := uint64(maxBufSize)
	if n < bufSize {
		bufSize = n
	}
	buf := bytes.Repeat([]byte{Fill}, int(bufSize))

	remaining := n
	for remaining > 0 {
		chunk := buf
		if remaining < uint64(len(chunk)) {
			chunk = chunk[:remaining]
		}
		if _, err := f.Write(chunk); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		remaining -= uint64(len(chunk))
	}
	return nil
}
