// Package typeworld provides the virtual filesystem and font resolution
// layer a document typesetting engine compiles against.
//
// The engine itself is an external collaborator plugged in through the
// Engine interface; typeworld answers the three questions it asks during
// compilation: which source file a reference resolves to, what bytes back
// a given file identity, and which font backs a given catalog index.
// Filesystem entities reachable through multiple spellings (symlinks,
// hardlinks, relative vs. canonical paths) collapse to one 128-bit
// identity with a single shared resolution outcome per compile run, and
// fonts are discovered lazily across the machine's font directories with
// full decoding deferred until a font is actually selected.
package typeworld

import (
	"os"

	"github.com/conneroisu/typeworld/internal/world"
)

// Compile constructs a fresh world rooted at the current working
// directory, pre-indexes system fonts plus the given extra font paths
// (directories or individual files; unusable paths are skipped silently),
// and performs one compile of markup with the given engine.
//
// On success it returns the exported binary blob, which is not guaranteed
// to be valid UTF-8. On failure the error is a *CompileError carrying one
// formatted multi-line diagnostic message, or a *FileError for resolution
// failures outside the engine.
func Compile(markup string, extraFontPaths []string, eng Engine) ([]byte, error) {
	var opts []Option
	for _, path := range extraFontPaths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			// Missing paths go through the directory walk, which skips
			// them without failing the compile.
			opts = append(opts, WithFontDirs(path))
			continue
		}
		opts = append(opts, WithFontFiles(path))
	}

	w := NewWorld(".", opts...)
	return w.Compile(eng, markup)
}

// NewWorld constructs a world rooted at root. See the Option functions for
// configuration.
func NewWorld(root string, opts ...Option) *SystemWorld {
	return world.New(root, opts...)
}
