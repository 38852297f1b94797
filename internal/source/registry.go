package source

import "github.com/conneroisu/typeworld/internal/vfs"

// Registry is the append-only, insertion-ordered store of source units for
// one compile run. Inserting never replaces an existing unit; lookup is a
// linear scan, which is fine at the dozens-of-files scale a single
// document reaches. Cleared between runs.
type Registry struct {
	units []*Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Insert appends a new unit with the given identity and text and returns
// it. The caller is responsible for not inserting the same identity twice
// within a run.
func (r *Registry) Insert(id FileID, text string) *Source {
	src := New(id, text)
	r.units = append(r.units, src)
	return src
}

// Lookup returns the first unit whose identity equals id. A miss is a
// "not a registered source" failure, distinct from filesystem errors: the
// identity may well exist on disk without having been registered this run.
func (r *Registry) Lookup(id FileID) (*Source, error) {
	for _, src := range r.units {
		if src.id == id {
			return src, nil
		}
	}
	return nil, &vfs.FileError{Kind: vfs.KindNotSource, Path: id.String()}
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Reset drops every registered unit. Called between compile runs.
func (r *Registry) Reset() {
	r.units = nil
}
