// Package vfs provides path identity, normalization, and the per-run
// resolution caches backing the world's file accessors.
//
// The central concept is the Identity: a 128-bit digest of the OS-level
// handle behind a path, so every spelling of the same filesystem entity
// (relative, canonical, symlinked, hardlinked) collapses to one value. The
// Cache layers two maps on top of that: raw path string to identity, and
// identity to a slot of lazily computed resolution outcomes.
package vfs

import (
	"encoding/hex"
	"os"

	"github.com/zeebo/blake3"
)

// Identity is a 128-bit digest identifying a filesystem entity independent
// of the textual path used to reach it. Two paths that resolve to the same
// underlying file produce the same Identity. The zero value identifies
// nothing.
type Identity [16]byte

// identityKey is the BLAKE3 domain-separation key for identity hashing.
// It is a fixed constant: changing it changes every identity. The bytes
// are the ASCII domain name, zero-padded to 32 bytes, so the key is
// inspectable in hex dumps.
var identityKey = [32]byte{
	't', 'y', 'p', 'e', 'w', 'o', 'r', 'l', 'd', '.', 'v', 'f', 's', '.',
	'i', 'd', 'e', 'n', 't', 'i', 't', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// String returns the identity as lowercase hex.
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the identity is the zero value.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// IdentityOf opens the path to obtain a handle to the underlying entity and
// hashes that handle. Failures are classified (not-found, access denied,
// other) rather than returned as generic I/O errors. Recomputation is
// idempotent: the same entity always yields the same identity.
func IdentityOf(path string) (Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return Identity{}, Classify(path, err)
	}
	defer f.Close()

	key, err := handleKey(f)
	if err != nil {
		return Identity{}, Classify(path, err)
	}

	h, err := blake3.NewKeyed(identityKey[:])
	if err != nil {
		return Identity{}, &FileError{Kind: KindOther, Path: path, Err: err}
	}
	h.Write(key)

	var id Identity
	copy(id[:], h.Sum(nil))
	return id, nil
}
