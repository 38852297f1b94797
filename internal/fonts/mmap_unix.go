//go:build unix

package fonts

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile memory-maps the file at path read-only and returns the mapped
// bytes with a release function. The descriptor is closed immediately; the
// mapping survives it. Empty files return an empty slice without mapping,
// since a zero-length mmap fails.
func mapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() == 0 {
		return nil, func() {}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() { _ = unix.Munmap(data) }, nil
}
