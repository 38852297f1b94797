package world

import "github.com/conneroisu/typeworld/internal/source"

// Document is the engine's compiled output. It is opaque to this package
// and only passed through to the export stage.
type Document any

// Engine is the external typesetting engine and its export stage. Compile
// receives the world as its resolution authority and either produces a
// document or an ordered list of diagnostics; Export turns a compiled
// document into the final output blob.
type Engine interface {
	Compile(w World) (Document, []Diagnostic)
	Export(doc Document) ([]byte, error)
}

// Diagnostic is one structured compile error tied to a source span,
// optionally with a causal trace of secondary spans.
type Diagnostic struct {
	Span    source.Span
	Message string
	Trace   []TracePoint
}

// TracePoint is one step in a diagnostic's causal trace.
type TracePoint struct {
	Span    source.Span
	Message string
}

// CompileError carries the formatted multi-line message assembled from the
// engine's diagnostics, along with the diagnostics themselves.
type CompileError struct {
	Diagnostics []Diagnostic
	Message     string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.Message
}
