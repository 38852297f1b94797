package world

import (
	"path/filepath"
	"time"

	"github.com/conneroisu/typeworld/internal/fonts"
	"github.com/conneroisu/typeworld/internal/logging"
	"github.com/conneroisu/typeworld/internal/source"
	"github.com/conneroisu/typeworld/internal/vfs"
)

// MainFileName is the fixed virtual filename under which the supplied
// markup is registered as the synthetic main document.
const MainFileName = "MARKUP.tsp"

// SystemWorld is the World implementation backed by the operating system's
// filesystem and fonts. The font catalog and book are built once at
// construction and live for the process; the resolution caches, the source
// registry, and the main document reset on every compile call.
//
// A SystemWorld is single-owner: exactly one compile may be in flight, and
// concurrent calls from multiple goroutines must be serialized by the
// caller. There is no internal locking.
type SystemWorld struct {
	root    string
	library *Library
	parser  fonts.Parser
	log     logging.Logger

	book    *fonts.Book
	catalog []*fonts.Slot

	cache   *vfs.Cache[source.FileID]
	sources *source.Registry
	main    *source.Source
}

type options struct {
	library     *Library
	parser      fonts.Parser
	log         logging.Logger
	fontDirs    []string
	fontFiles   []string
	systemFonts bool
}

// Option configures a SystemWorld.
type Option func(*options)

// WithLibrary sets the static library definitions handed to the engine.
func WithLibrary(lib *Library) Option {
	return func(o *options) { o.library = lib }
}

// WithParser replaces the default sfnt-backed font parser.
func WithParser(p fonts.Parser) Option {
	return func(o *options) { o.parser = p }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log logging.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithFontDirs adds extra directories searched recursively for fonts.
func WithFontDirs(dirs ...string) Option {
	return func(o *options) { o.fontDirs = append(o.fontDirs, dirs...) }
}

// WithFontFiles adds individual font files indexed directly.
func WithFontFiles(files ...string) Option {
	return func(o *options) { o.fontFiles = append(o.fontFiles, files...) }
}

// WithoutSystemFonts skips scanning the platform font directories.
func WithoutSystemFonts() Option {
	return func(o *options) { o.systemFonts = false }
}

// New constructs a world rooted at root. Font discovery runs here, once:
// system directories (unless disabled), then extra directories, then
// explicit files, so extra fonts always receive higher catalog indices
// than system fonts.
func New(root string, opts ...Option) *SystemWorld {
	o := options{systemFonts: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parser == nil {
		o.parser = fonts.NewParser()
	}
	if o.log == nil {
		o.log = logging.Nop()
	}
	if o.library == nil {
		o.library = &Library{Name: "standard"}
	}

	searcher := fonts.NewSearcher(o.parser, o.log)
	if o.systemFonts {
		searcher.SearchSystem()
	}
	for _, dir := range o.fontDirs {
		searcher.SearchDir(dir)
	}
	for _, file := range o.fontFiles {
		searcher.SearchFile(file)
	}

	w := &SystemWorld{
		root:    root,
		library: o.library,
		parser:  o.parser,
		log:     o.log.WithComponent("world"),
		book:    searcher.Book(),
		catalog: searcher.Slots(),
		cache:   vfs.NewCache[source.FileID](),
		sources: source.NewRegistry(),
		main:    source.New(source.VirtualID(MainFileName), ""),
	}
	w.log.Debug("world constructed", "root", root, "fonts", len(w.catalog))
	return w
}

// Library returns the static library definitions.
func (w *SystemWorld) Library() *Library {
	return w.library
}

// Book returns the font metadata book.
func (w *SystemWorld) Book() *fonts.Book {
	return w.book
}

// Catalog returns the font catalog in discovery order. Catalog index i
// always corresponds to book entry i.
func (w *SystemWorld) Catalog() []*fonts.Slot {
	return w.catalog
}

// Main returns the currently active main document.
func (w *SystemWorld) Main() *source.Source {
	return w.main
}

// Source returns the registered source unit for id.
func (w *SystemWorld) Source(id source.FileID) (*source.Source, error) {
	return w.sources.Lookup(id)
}

// File returns the raw bytes behind id, re-exposing the registered
// source's text.
func (w *SystemWorld) File(id source.FileID) ([]byte, error) {
	src, err := w.sources.Lookup(id)
	if err != nil {
		return nil, err
	}
	return []byte(src.Text()), nil
}

// Resolve returns the file identity for the source file at path. The
// first resolution of an identity reads the file and registers it as a
// source unit; later resolutions through any spelling of the same entity
// return the memoized identity, or the memoized failure.
func (w *SystemWorld) Resolve(path string) (source.FileID, error) {
	slot, err := w.slot(path)
	if err != nil {
		return source.FileID{}, err
	}
	return slot.Source(func() (source.FileID, error) {
		data, err := vfs.ReadFile(w.abs(path))
		if err != nil {
			return source.FileID{}, err
		}
		id := source.PhysicalID(slot.ID())
		w.sources.Insert(id, string(data))
		return id, nil
	})
}

// Read returns the raw bytes of the file at path, memoized per identity.
func (w *SystemWorld) Read(path string) ([]byte, error) {
	slot, err := w.slot(path)
	if err != nil {
		return nil, err
	}
	return slot.Bytes(func() ([]byte, error) {
		return vfs.ReadFile(w.abs(path))
	})
}

// Font returns the decoded font at the given catalog index, or absent.
func (w *SystemWorld) Font(index int) (*fonts.Font, bool) {
	if index < 0 || index >= len(w.catalog) {
		return nil, false
	}
	return w.catalog[index].Font(w.parser)
}

// Today always fails: date-based document features are unsupported and
// callers must treat this as a hard failure, not a recoverable absence.
func (w *SystemWorld) Today(offset int) (time.Time, error) {
	return time.Time{}, &vfs.FileError{Kind: vfs.KindUnsupported, Path: "today"}
}

// Reset clears the source registry and both resolution caches. The font
// catalog and book are process-lifetime and never cleared.
func (w *SystemWorld) Reset() {
	w.sources.Reset()
	w.cache.Reset()
}

// Compile performs one compile run: reset all per-run state, register the
// markup as the synthetic main document, hand this world to the engine,
// and either export the compiled document or assemble the diagnostics
// into one error. A failed compile leaves the world consumable; the next
// call resets unconditionally.
func (w *SystemWorld) Compile(eng Engine, markup string) ([]byte, error) {
	w.Reset()
	w.main = w.sources.Insert(source.VirtualID(MainFileName), markup)
	w.log.Debug("compile started", "main", MainFileName, "bytes", len(markup))

	doc, diags := eng.Compile(w)
	if len(diags) > 0 {
		msg, err := w.formatDiagnostics(diags)
		if err != nil {
			return nil, err
		}
		w.log.Debug("compile failed", "diagnostics", len(diags))
		return nil, &CompileError{Diagnostics: diags, Message: msg}
	}

	out, err := eng.Export(doc)
	if err != nil {
		return nil, err
	}
	w.log.Debug("compile finished", "output_bytes", len(out))
	return out, nil
}

// slot returns the resolution slot for path.
func (w *SystemWorld) slot(path string) (*vfs.Slot[source.FileID], error) {
	return w.cache.Slot(w.abs(path))
}

// abs anchors relative paths at the world root.
func (w *SystemWorld) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.root, path)
}
