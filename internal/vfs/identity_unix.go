//go:build unix

package vfs

import (
	"encoding/binary"
	"os"

	"golang.org/x/sys/unix"
)

// handleKey returns the bytes that identify the entity behind an open file.
// On unix that is the (device, inode) pair from fstat, which is shared by
// every hardlink and symlink target pointing at the same file.
func handleKey(f *os.File) ([]byte, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return nil, err
	}
	key := make([]byte, 16)
	binary.LittleEndian.PutUint64(key[:8], uint64(st.Dev))
	binary.LittleEndian.PutUint64(key[8:], uint64(st.Ino))
	return key, nil
}
