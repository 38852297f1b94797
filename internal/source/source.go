package source

import "fmt"

// Span ties a diagnostic to a byte range in one source unit. A span whose
// ID is detached references no registered source and cannot be resolved to
// a range.
type Span struct {
	ID    FileID
	Start int
	End   int
}

// IsDetached reports whether the span references no source unit.
func (s Span) IsDetached() bool {
	return s.ID.IsDetached()
}

// Source is one parsed source unit: an identity plus its full text.
// Immutable after construction; edits require registering a new unit.
type Source struct {
	id   FileID
	text string
}

// New returns a source unit with the given identity and text.
func New(id FileID, text string) *Source {
	return &Source{id: id, text: text}
}

// ID returns the unit's file identity.
func (s *Source) ID() FileID {
	return s.id
}

// Text returns the unit's full text.
func (s *Source) Text() string {
	return s.text
}

// Len returns the text length in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// Range validates sp against this unit and returns its concrete
// (start, end) byte offsets. The span must belong to this unit and lie
// within its text.
func (s *Source) Range(sp Span) (start, end int, err error) {
	if sp.ID != s.id {
		return 0, 0, fmt.Errorf("span belongs to %s, not %s", sp.ID, s.id)
	}
	if sp.Start < 0 || sp.End < sp.Start || sp.End > len(s.text) {
		return 0, 0, fmt.Errorf("span %d:%d outside source %s (%d bytes)", sp.Start, sp.End, s.id, len(s.text))
	}
	return sp.Start, sp.End, nil
}
