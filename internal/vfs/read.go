package vfs

import "os"

// ReadFile reads the whole file at path with classified failures.
// Directories are reported as KindIsDirectory rather than whatever the OS
// read error happens to be.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, Classify(path, err)
	}
	if info.IsDir() {
		return nil, &FileError{Kind: KindIsDirectory, Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Classify(path, err)
	}
	return data, nil
}
