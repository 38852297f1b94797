package fonts

import "github.com/conneroisu/typeworld/internal/vfs"

// Slot holds the location of one discovered font record and, lazily, the
// decoded font itself. Slots are created during discovery in catalog order
// and never removed; only the decode cell mutates afterwards, and at most
// once. Not safe for concurrent use; the world is driven single-threaded.
type Slot struct {
	path  string
	index int

	decoded bool
	font    *Font
}

// NewSlot returns a slot for the font record at the given collection index
// within the file at path.
func NewSlot(path string, index int) *Slot {
	return &Slot{path: path, index: index}
}

// Path returns the file holding this font.
func (s *Slot) Path() string {
	return s.path
}

// Index returns the record's collection index within the file.
func (s *Slot) Index() int {
	return s.index
}

// Font returns the decoded font, decoding on first call. The file is read
// in full here rather than reusing the discovery-time mapping, so mapped
// memory is not held for the process lifetime. The outcome is memoized in
// both directions: a font that fails to read or decode reports absent on
// every later call without retrying, and a font that decodes is shared.
func (s *Slot) Font(p Parser) (*Font, bool) {
	if !s.decoded {
		s.decoded = true
		if data, err := vfs.ReadFile(s.path); err == nil {
			if font, err := p.Decode(data, s.index); err == nil {
				s.font = font
			}
		}
	}
	return s.font, s.font != nil
}
