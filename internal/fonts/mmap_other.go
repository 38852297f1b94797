//go:build !unix

package fonts

import "os"

// mapFile reads the file at path in full. Platforms without unix mmap
// support pay the read cost up front; the release function is a no-op.
func mapFile(path string) ([]byte, func(), error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
