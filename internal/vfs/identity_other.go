//go:build !unix

package vfs

import (
	"os"
	"path/filepath"
)

// handleKey returns the bytes that identify the entity behind an open file.
// Without fstat-style handle information this falls back to the fully
// resolved absolute path, which still collapses symlinks and relative
// spellings but cannot collapse hardlinks.
func handleKey(f *os.File) ([]byte, error) {
	resolved, err := filepath.EvalSymlinks(f.Name())
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, err
	}
	return []byte(abs), nil
}
