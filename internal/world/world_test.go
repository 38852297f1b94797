package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/typeworld/internal/fonts"
	"github.com/conneroisu/typeworld/internal/source"
	"github.com/conneroisu/typeworld/internal/vfs"
)

// stubEngine drives the world the way a real typesetting engine would,
// with test-controlled compile and export behavior.
type stubEngine struct {
	compileFn func(w World) (Document, []Diagnostic)
	exportFn  func(doc Document) ([]byte, error)
}

func (e *stubEngine) Compile(w World) (Document, []Diagnostic) {
	if e.compileFn != nil {
		return e.compileFn(w)
	}
	return w.Main().Text(), nil
}

func (e *stubEngine) Export(doc Document) ([]byte, error) {
	if e.exportFn != nil {
		return e.exportFn(doc)
	}
	return append([]byte("%PDF-1.7\n"), []byte(doc.(string))...), nil
}

// stubParser yields one fixed record per probed file so font tests need
// no real font binaries.
type stubParser struct {
	decodes int
}

func (p *stubParser) Probe(data []byte) []fonts.Record {
	return []fonts.Record{{Info: fonts.Info{Family: "Stub", Style: "Regular"}, Index: 0}}
}

func (p *stubParser) Decode(data []byte, index int) (*fonts.Font, error) {
	p.decodes++
	return &fonts.Font{Info: fonts.Info{Family: "Stub", Style: "Regular"}, Data: data, Index: index}, nil
}

func newTestWorld(t *testing.T, opts ...Option) *SystemWorld {
	t.Helper()
	return New(t.TempDir(), append([]Option{WithoutSystemFonts()}, opts...)...)
}

func TestCompileSuccess(t *testing.T) {
	w := newTestWorld(t)
	out, err := w.Compile(&stubEngine{}, "Hello")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
	assert.Contains(t, string(out), "Hello")
}

func TestCompileRegistersMain(t *testing.T) {
	w := newTestWorld(t)
	var gotID source.FileID
	var gotText string
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			gotID = cw.Main().ID()
			gotText = cw.Main().Text()
			return "", nil
		},
	}
	_, err := w.Compile(eng, "= Title")
	require.NoError(t, err)
	assert.Equal(t, source.VirtualID(MainFileName), gotID)
	assert.Equal(t, "= Title", gotText)

	// The main document is also reachable through the source accessor.
	src, err := w.Source(gotID)
	require.NoError(t, err)
	assert.Equal(t, "= Title", src.Text())
}

func TestResolveDedupAcrossSpellings(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "inc.tsp")
	require.NoError(t, os.WriteFile(file, []byte("included"), 0o644))
	link := filepath.Join(root, "alias.tsp")
	require.NoError(t, os.Symlink(file, link))

	w := New(root, WithoutSystemFonts())

	direct, err := w.Resolve("inc.tsp")
	require.NoError(t, err)
	viaLink, err := w.Resolve(link)
	require.NoError(t, err)
	again, err := w.Resolve(file)
	require.NoError(t, err)

	assert.Equal(t, direct, viaLink, "all spellings of one entity share one identity")
	assert.Equal(t, direct, again)

	src, err := w.Source(direct)
	require.NoError(t, err)
	assert.Equal(t, "included", src.Text())
}

func TestResolveRegistersOnce(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "inc.tsp")
	require.NoError(t, os.WriteFile(file, []byte("v1"), 0o644))

	w := New(root, WithoutSystemFonts())
	id, err := w.Resolve("inc.tsp")
	require.NoError(t, err)

	// Rewriting the file mid-run must not be observed: the resolution is
	// memoized per identity for the whole run.
	require.NoError(t, os.WriteFile(file, []byte("v2"), 0o644))
	again, err := w.Resolve("inc.tsp")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	src, err := w.Source(id)
	require.NoError(t, err)
	assert.Equal(t, "v1", src.Text())
}

func TestResolveFailureMemoized(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.Resolve("missing.tsp")
	require.Error(t, err)
	assert.ErrorIs(t, err, vfs.ErrNotFound)

	_, err = w.Resolve("missing.tsp")
	assert.ErrorIs(t, err, vfs.ErrNotFound)
}

func TestReadMemoized(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "asset.bin")
	require.NoError(t, os.WriteFile(file, []byte("original"), 0o644))

	w := New(root, WithoutSystemFonts())
	first, err := w.Read("asset.bin")
	require.NoError(t, err)
	assert.Equal(t, "original", string(first))

	require.NoError(t, os.WriteFile(file, []byte("changed"), 0o644))
	second, err := w.Read("asset.bin")
	require.NoError(t, err)
	assert.Equal(t, "original", string(second), "byte buffer is computed at most once per run")
}

func TestFileReexposesSourceText(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "inc.tsp")
	require.NoError(t, os.WriteFile(file, []byte("included text"), 0o644))

	w := New(root, WithoutSystemFonts())
	id, err := w.Resolve("inc.tsp")
	require.NoError(t, err)

	data, err := w.File(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("included text"), data)

	_, err = w.File(source.VirtualID("never.tsp"))
	assert.ErrorIs(t, err, vfs.ErrNotSource)
}

func TestResetIsolation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "inc.tsp"), []byte("x"), 0o644))

	w := New(root, WithoutSystemFonts())

	var firstRunID source.FileID
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			id, err := cw.Resolve("inc.tsp")
			if err != nil {
				t.Fatal(err)
			}
			firstRunID = id
			return "", nil
		},
	}
	_, err := w.Compile(eng, "first")
	require.NoError(t, err)

	_, err = w.Source(firstRunID)
	require.NoError(t, err, "registered source is reachable after its own run")

	_, err = w.Compile(&stubEngine{}, "second")
	require.NoError(t, err)

	_, err = w.Source(firstRunID)
	assert.ErrorIs(t, err, vfs.ErrNotSource, "identities from the prior run are unreachable")
}

func TestCompileFailureFormatsDiagnostics(t *testing.T) {
	w := newTestWorld(t)
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			id := cw.Main().ID()
			return nil, []Diagnostic{{
				Span:    source.Span{ID: id, Start: 0, End: 5},
				Message: "unknown variable",
				Trace: []TracePoint{{
					Span:    source.Span{ID: id, Start: 6, End: 11},
					Message: "called from here",
				}},
			}}
		},
	}

	_, err := w.Compile(eng, "Hello world")
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.Diagnostics, 1)
	assert.True(t, strings.HasPrefix(ce.Message, "compile error:\n"))
	assert.Contains(t, ce.Message, "0:5 unknown variable")
	assert.Contains(t, ce.Message, "stacktrace:")
	assert.Contains(t, ce.Message, "  6:11 called from here")
}

func TestCompileMultipleDiagnostics(t *testing.T) {
	w := newTestWorld(t)
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			id := cw.Main().ID()
			return nil, []Diagnostic{
				{Span: source.Span{ID: id, Start: 0, End: 1}, Message: "first"},
				{Span: source.Span{ID: id, Start: 2, End: 3}, Message: "second"},
			}
		},
	}

	_, err := w.Compile(eng, "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0:1 first")
	assert.Contains(t, err.Error(), "2:3 second")
	assert.NotContains(t, err.Error(), "stacktrace:")
}

func TestCompileDetachedSpan(t *testing.T) {
	w := newTestWorld(t)
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			return nil, []Diagnostic{{Message: "floating error"}}
		},
	}

	_, err := w.Compile(eng, "Hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, vfs.ErrDetached)

	var ce *CompileError
	assert.False(t, errors.As(err, &ce), "a detached span is its own error, not a formatted compile error")
}

func TestCompileSpanToUnregisteredSource(t *testing.T) {
	w := newTestWorld(t)
	eng := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			return nil, []Diagnostic{{
				Span:    source.Span{ID: source.VirtualID("phantom.tsp"), Start: 0, End: 1},
				Message: "from nowhere",
			}}
		},
	}

	_, err := w.Compile(eng, "Hello")
	assert.ErrorIs(t, err, vfs.ErrNotSource)
}

func TestCompileAfterFailure(t *testing.T) {
	w := newTestWorld(t)
	failing := &stubEngine{
		compileFn: func(cw World) (Document, []Diagnostic) {
			return nil, []Diagnostic{{
				Span:    source.Span{ID: cw.Main().ID(), Start: 0, End: 1},
				Message: "nope",
			}}
		},
	}
	_, err := w.Compile(failing, "bad input")
	require.Error(t, err)

	out, err := w.Compile(&stubEngine{}, "good input")
	require.NoError(t, err)
	assert.Contains(t, string(out), "good input")
}

func TestExportFailurePropagates(t *testing.T) {
	w := newTestWorld(t)
	boom := errors.New("export exploded")
	eng := &stubEngine{
		exportFn: func(doc Document) ([]byte, error) { return nil, boom },
	}
	_, err := w.Compile(eng, "Hello")
	assert.ErrorIs(t, err, boom)
}

func TestFontAccessor(t *testing.T) {
	root := t.TempDir()
	fontFile := filepath.Join(root, "stub.ttf")
	require.NoError(t, os.WriteFile(fontFile, []byte("stub bytes"), 0o644))

	parser := &stubParser{}
	w := New(root, WithoutSystemFonts(), WithParser(parser), WithFontFiles(fontFile))

	require.Equal(t, 1, w.Book().Len())
	require.Len(t, w.Catalog(), 1)

	first, ok := w.Font(0)
	require.True(t, ok)
	assert.Equal(t, "Stub", first.Info.Family)

	second, ok := w.Font(0)
	require.True(t, ok)
	assert.Same(t, first, second)
	assert.Equal(t, 1, parser.decodes, "font decode is memoized")

	_, ok = w.Font(1)
	assert.False(t, ok)
	_, ok = w.Font(-1)
	assert.False(t, ok)
}

func TestFontCatalogSurvivesReset(t *testing.T) {
	root := t.TempDir()
	fontFile := filepath.Join(root, "stub.ttf")
	require.NoError(t, os.WriteFile(fontFile, []byte("stub bytes"), 0o644))

	w := New(root, WithoutSystemFonts(), WithParser(&stubParser{}), WithFontFiles(fontFile))
	_, err := w.Compile(&stubEngine{}, "one")
	require.NoError(t, err)
	_, err = w.Compile(&stubEngine{}, "two")
	require.NoError(t, err)

	assert.Equal(t, 1, w.Book().Len(), "fonts are process-lifetime, not per-run")
	assert.Len(t, w.Catalog(), 1)
}

func TestTodayUnsupported(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.Today(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, vfs.ErrUnsupported)
}

func TestLibraryDefault(t *testing.T) {
	w := newTestWorld(t)
	require.NotNil(t, w.Library())
	assert.Equal(t, "standard", w.Library().Name)

	custom := &Library{Name: "minimal", Definitions: map[string]any{"pi": 3.14}}
	w2 := newTestWorld(t, WithLibrary(custom))
	assert.Same(t, custom, w2.Library())
}

func TestReadIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "subdir"), 0o755))

	w := New(root, WithoutSystemFonts())
	_, err := w.Read("subdir")
	assert.ErrorIs(t, err, vfs.ErrIsDirectory)
}
