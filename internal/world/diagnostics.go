package world

import (
	"fmt"
	"strings"

	"github.com/conneroisu/typeworld/internal/source"
	"github.com/conneroisu/typeworld/internal/vfs"
)

// formatDiagnostics assembles the engine's diagnostics into one multi-line
// human-readable message. Each span is translated to concrete (start, end)
// text offsets by looking up its owning source unit; a span that cannot be
// resolved to a registered source is itself a reportable error, not a
// silent drop.
func (w *SystemWorld) formatDiagnostics(diags []Diagnostic) (string, error) {
	var b strings.Builder
	b.WriteString("compile error:\n")

	for _, d := range diags {
		start, end, err := w.spanRange(d.Span)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d:%d %s\n", start, end, d.Message)

		if len(d.Trace) > 0 {
			b.WriteString("stacktrace:\n")
		}
		for _, p := range d.Trace {
			start, end, err := w.spanRange(p.Span)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "  %d:%d %s\n", start, end, p.Message)
		}
	}
	return b.String(), nil
}

// spanRange resolves a span to its (start, end) offsets via the registry.
func (w *SystemWorld) spanRange(sp source.Span) (int, int, error) {
	if sp.IsDetached() {
		return 0, 0, &vfs.FileError{Kind: vfs.KindDetached, Path: "diagnostic span"}
	}
	src, err := w.sources.Lookup(sp.ID)
	if err != nil {
		return 0, 0, err
	}
	start, end, err := src.Range(sp)
	if err != nil {
		return 0, 0, &vfs.FileError{Kind: vfs.KindOther, Path: sp.ID.String(), Err: err}
	}
	return start, end, nil
}
