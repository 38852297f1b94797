// Package fonts provides font discovery, the font metadata book, and lazy
// font decoding for the world.
//
// Discovery walks the configured directories once at world construction,
// memory-maps each candidate file, and probes it for embedded font
// records. One file may contribute several records (collections), each of
// which becomes one catalog slot and one book entry, in lock-step: catalog
// index i always describes the same font as book entry i. Full decoding is
// deferred until the engine actually selects a font.
package fonts

import "strings"

// Info is the eagerly extracted metadata for one font record. It is what
// the engine consults to pick candidates before any font bytes are
// decoded.
type Info struct {
	Family string
	Style  string
}

// Book is the ordered, queryable index of discovered font metadata.
// Built once during discovery and read-only afterwards.
type Book struct {
	infos []Info
}

// NewBook returns an empty font book.
func NewBook() *Book {
	return &Book{}
}

// Push appends a metadata entry. Discovery calls this in lock-step with
// appending the matching catalog slot.
func (b *Book) Push(info Info) {
	b.infos = append(b.infos, info)
}

// Len returns the number of entries.
func (b *Book) Len() int {
	return len(b.infos)
}

// Info returns the entry at index i.
func (b *Book) Info(i int) (Info, bool) {
	if i < 0 || i >= len(b.infos) {
		return Info{}, false
	}
	return b.infos[i], true
}

// Select returns the catalog indices whose family matches the given name,
// case-insensitively, in discovery order.
func (b *Book) Select(family string) []int {
	var indices []int
	for i, info := range b.infos {
		if strings.EqualFold(info.Family, family) {
			indices = append(indices, i)
		}
	}
	return indices
}
