package typeworld

import (
	"github.com/conneroisu/typeworld/internal/fonts"
	"github.com/conneroisu/typeworld/internal/source"
	"github.com/conneroisu/typeworld/internal/vfs"
	"github.com/conneroisu/typeworld/internal/world"
)

// Public type aliases for the internal types that appear in the API.
// These are Go type aliases (=), identical to the internal types at
// compile time; external consumers use these names without conversion.

type (
	// World is the resolution contract an engine compiles against.
	World = world.World
	// SystemWorld is the OS-backed World implementation.
	SystemWorld = world.SystemWorld
	// Engine is the external typesetting engine and export stage.
	Engine = world.Engine
	// Document is the engine's opaque compiled output.
	Document = world.Document
	// Diagnostic is one structured compile error tied to a source span.
	Diagnostic = world.Diagnostic
	// TracePoint is one step in a diagnostic's causal trace.
	TracePoint = world.TracePoint
	// CompileError is the aggregated compile failure.
	CompileError = world.CompileError
	// Library holds the static definitions handed to the engine.
	Library = world.Library
	// Option configures a SystemWorld.
	Option = world.Option

	// FileID identifies a source unit (virtual or filesystem-backed).
	FileID = source.FileID
	// Span ties a diagnostic to a byte range in one source unit.
	Span = source.Span
	// Source is one registered source unit.
	Source = source.Source

	// FontBook is the queryable font metadata index.
	FontBook = fonts.Book
	// FontInfo is the eagerly extracted metadata for one font record.
	FontInfo = fonts.Info
	// Font is a fully decoded font.
	Font = fonts.Font
	// FontParser extracts and decodes font records from raw bytes.
	FontParser = fonts.Parser

	// FileError is a classified resolution failure.
	FileError = vfs.FileError
	// Identity is the 128-bit digest identifying a filesystem entity.
	Identity = vfs.Identity
)

// Option constructors, re-exported from the world package.
var (
	WithLibrary        = world.WithLibrary
	WithParser         = world.WithParser
	WithLogger         = world.WithLogger
	WithFontDirs       = world.WithFontDirs
	WithFontFiles      = world.WithFontFiles
	WithoutSystemFonts = world.WithoutSystemFonts
)

// MainFileName is the virtual filename of the synthetic main document.
const MainFileName = world.MainFileName

// VirtualID returns the identity for a synthetic in-memory document.
func VirtualID(path string) FileID {
	return source.VirtualID(path)
}

// IdentityOf computes the 128-bit identity of the filesystem entity at
// path.
func IdentityOf(path string) (Identity, error) {
	return vfs.IdentityOf(path)
}
