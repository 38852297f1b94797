// Package source provides the parsed source units a compile run works
// over: file identities, spans into source text, and the append-only
// registry queried by the world's accessors.
package source

import "github.com/conneroisu/typeworld/internal/vfs"

type fileKind uint8

const (
	kindDetached fileKind = iota
	kindVirtual
	kindPhysical
)

// FileID identifies one source unit. It is a tagged union: synthetic
// in-memory documents carry a virtual path tag, on-disk documents carry the
// filesystem identity of their backing file. Equality is per-variant, so
// virtual and physical identities coexist in one identity space without
// special-casing. The zero value is detached and identifies nothing.
type FileID struct {
	kind  fileKind
	vpath string
	ident vfs.Identity
}

// VirtualID returns the identity for a synthetic document tagged with the
// given virtual path.
func VirtualID(path string) FileID {
	return FileID{kind: kindVirtual, vpath: path}
}

// PhysicalID returns the identity for a document backed by the filesystem
// entity with the given identity.
func PhysicalID(ident vfs.Identity) FileID {
	return FileID{kind: kindPhysical, ident: ident}
}

// IsDetached reports whether the identity identifies nothing.
func (id FileID) IsDetached() bool {
	return id.kind == kindDetached
}

// String returns the virtual path or the identity digest, for messages.
func (id FileID) String() string {
	switch id.kind {
	case kindVirtual:
		return id.vpath
	case kindPhysical:
		return id.ident.String()
	default:
		return "<detached>"
	}
}
