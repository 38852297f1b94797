package vfs

import "path/filepath"

// cell is a compute-once container: the first Get pays the cost of load,
// every later Get returns the memoized outcome, including a memoized
// failure. Cells are not safe for concurrent use; the world is driven
// single-threaded by design.
type cell[T any] struct {
	filled bool
	value  T
	err    error
}

// Get returns the cached outcome, computing it via load on first call.
func (c *cell[T]) Get(load func() (T, error)) (T, error) {
	if !c.filled {
		c.value, c.err = load()
		c.filled = true
	}
	return c.value, c.err
}

// Filled reports whether the cell has been computed.
func (c *cell[T]) Filled() bool {
	return c.filled
}

// Slot holds the lazily computed resolution outcomes for one filesystem
// identity: a resolved source outcome of type S and a raw byte buffer.
// The two cells are independent; each is computed at most once per compile
// run no matter how many path spellings reach the slot.
type Slot[S any] struct {
	id     Identity
	source cell[S]
	buffer cell[[]byte]
}

// ID returns the identity this slot belongs to.
func (s *Slot[S]) ID() Identity {
	return s.id
}

// Source returns the slot's source outcome, computing it on first call.
func (s *Slot[S]) Source(load func() (S, error)) (S, error) {
	return s.source.Get(load)
}

// Bytes returns the slot's byte buffer, computing it on first call.
func (s *Slot[S]) Bytes(load func() ([]byte, error)) ([]byte, error) {
	return s.buffer.Get(load)
}

// pathOutcome records a computed identity or the failure that prevented
// computing it, so a known-bad path is not re-attempted within a run.
type pathOutcome struct {
	id  Identity
	err error
}

// Cache is the two-layer resolution cache: path string to identity, and
// identity to slot. S is the resolved-source outcome type stored in slots;
// the cache itself never inspects it.
type Cache[S any] struct {
	paths map[string]pathOutcome
	slots map[Identity]*Slot[S]
}

// NewCache returns an empty resolution cache.
func NewCache[S any]() *Cache[S] {
	return &Cache[S]{
		paths: make(map[string]pathOutcome),
		slots: make(map[Identity]*Slot[S]),
	}
}

// Slot returns the slot for the entity behind path, computing and caching
// the path's identity on first sight. On success the identity is cached
// under both the supplied spelling and the normalized canonical spelling,
// so later lookups through either hit the same slot without re-hashing the
// handle. Resolution failures are cached under the supplied spelling and
// returned on every subsequent lookup.
func (c *Cache[S]) Slot(path string) (*Slot[S], error) {
	outcome, ok := c.paths[path]
	if !ok {
		id, err := IdentityOf(path)
		outcome = pathOutcome{id: id, err: err}
		if err == nil {
			if canon, cerr := filepath.EvalSymlinks(path); cerr == nil {
				c.paths[Normalize(canon)] = outcome
			}
		}
		c.paths[path] = outcome
	}
	if outcome.err != nil {
		return nil, outcome.err
	}

	slot, ok := c.slots[outcome.id]
	if !ok {
		slot = &Slot[S]{id: outcome.id}
		c.slots[outcome.id] = slot
	}
	return slot, nil
}

// Len returns the number of cached path spellings and identity slots.
func (c *Cache[S]) Len() (paths, slots int) {
	return len(c.paths), len(c.slots)
}

// Reset drops every cached path and slot. Called between compile runs.
func (c *Cache[S]) Reset() {
	clear(c.paths)
	clear(c.slots)
}
