// Package world composes the resolution layers into the façade a
// typesetting engine compiles against: static library definitions, the
// font book and catalog, the active main document, and per-identity
// source, byte, and font lookups, all cached per compile run.
package world

import (
	"time"

	"github.com/conneroisu/typeworld/internal/fonts"
	"github.com/conneroisu/typeworld/internal/source"
)

// World is the read-only resolution contract the engine calls back into
// during compilation. Calls arrive synchronously, possibly many times per
// accessor in no guaranteed order; every accessor memoizes per compile
// run, so repeated calls for one identity resolve at most once.
type World interface {
	// Library returns the static definitions available to every document.
	Library() *Library

	// Book returns the font metadata index the engine consults to pick
	// candidate fonts before any font bytes are decoded.
	Book() *fonts.Book

	// Main returns the currently active main document.
	Main() *source.Source

	// Resolve returns the file identity for the source file at path,
	// reading and registering it on first resolution. Every spelling of
	// the same underlying file yields the same identity.
	Resolve(path string) (source.FileID, error)

	// Source returns the registered source unit for id. It fails with a
	// not-a-source error when id was never registered this run, which is
	// distinct from a file being missing on disk.
	Source(id source.FileID) (*source.Source, error)

	// File returns the raw bytes behind id by re-exposing the registered
	// source's text.
	File(id source.FileID) ([]byte, error)

	// Read returns the raw bytes of the file at path, memoized per
	// identity, for assets that are not source units.
	Read(path string) ([]byte, error)

	// Font returns the decoded font at the given catalog index, or absent
	// if the index is out of range or the font cannot be decoded. Decode
	// failure is not an error channel; it degrades to "no font".
	Font(index int) (*fonts.Font, bool)

	// Today is unsupported: date-based document features are not provided
	// and every call fails.
	Today(offset int) (time.Time, error)
}

// Library holds the static definitions available to every document. Its
// contents are owned by the engine; this layer only stores and hands them
// back.
type Library struct {
	Name        string
	Definitions map[string]any
}
