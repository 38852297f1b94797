package fonts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/conneroisu/typeworld/internal/logging"
)

// Searcher populates the font catalog and book at construction time from
// system font directories, extra directories, and explicit files. A
// searcher is used once and discarded; the book and slots it built live
// for the rest of the process.
type Searcher struct {
	parser Parser
	log    logging.Logger
	book   *Book
	slots  []*Slot
}

// NewSearcher returns a searcher that probes candidates with the given
// parser and reports skipped candidates through the given logger.
func NewSearcher(parser Parser, log logging.Logger) *Searcher {
	return &Searcher{
		parser: parser,
		log:    log.WithComponent("fonts"),
		book:   NewBook(),
	}
}

// Book returns the metadata book built so far.
func (s *Searcher) Book() *Book {
	return s.book
}

// Slots returns the catalog built so far, in discovery order.
func (s *Searcher) Slots() []*Slot {
	return s.slots
}

// SearchSystem searches the platform's system font directories.
func (s *Searcher) SearchSystem() {
	for _, dir := range SystemDirs() {
		s.SearchDir(dir)
	}
}

// SearchDir recursively searches a directory for font files. Symbolic
// links are followed (with cycle protection), entries are visited in
// lexicographic filename order so catalog index assignment is reproducible
// across runs, and unreadable directories are skipped silently.
func (s *Searcher) SearchDir(dir string) {
	before := len(s.slots)
	s.walk(dir, make(map[string]bool))
	s.log.Debug("searched font directory", "dir", dir, "found", len(s.slots)-before)
}

func (s *Searcher) walk(dir string, visited map[string]bool) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil || visited[resolved] {
		return
	}
	visited[resolved] = true

	// os.ReadDir sorts entries by filename, which pins discovery order.
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Debug("skipping unreadable directory", "dir", dir, "error", err)
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			s.walk(path, visited)
			continue
		}
		if isFontFile(entry.Name()) {
			s.SearchFile(path)
		}
	}
}

// SearchFile indexes the font records in the file at path. The file is
// memory-mapped rather than read, so discovery never pays full-file I/O
// for fonts the engine ends up not selecting; only metadata is extracted
// eagerly. Files that cannot be mapped or contain no parseable records
// are skipped silently.
func (s *Searcher) SearchFile(path string) {
	data, unmap, err := mapFile(path)
	if err != nil {
		s.log.Debug("skipping font candidate", "path", path, "error", err)
		return
	}
	defer unmap()

	for _, rec := range s.parser.Probe(data) {
		s.book.Push(rec.Info)
		s.slots = append(s.slots, NewSlot(path, rec.Index))
	}
}

// isFontFile reports whether name has a recognized font extension,
// case-insensitively: single fonts (ttf/otf) and collections (ttc/otc).
func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}
