// Package multidict implements an incrementally-rehashed two-table hash
// index: a two-table dictionary whose per-bucket chain is an opaque,
// byte-size-bounded "slot" container, with lazy whole-slot migration
// during rehashing.
package multidict

// Slot is the capability interface required from any slot implementation
// (this module ships one concrete implementation in multidict/flatslot;
// a production deployment might add compact variants tuned for small or
// large value distributions). Exposing this as a plain Go interface
// gives Dict the polymorphism it needs without any vtable-style
// indirection: each slot implementation is simply a separate type.
type Slot interface {
	// SizeBytes reports the uncompressed byte footprint of the slot's
	// contents, used to track usedBytes deltas on mutation.
	SizeBytes() uint32
	// Count reports the number of elements currently in the slot.
	Count() uint32
	// GetOrCreateEntry is the upsert capability the interface exposes;
	// callers needing to both locate and possibly insert an entry use
	// this instead of a separate find+insert pair. Returns whether a new
	// entry was created.
	GetOrCreateEntry(key []byte) (created bool)
	// RemoveEntry deletes the entry for key, reporting whether it existed.
	RemoveEntry(key []byte) bool
	// FindValueByKey returns the value for key, if present.
	FindValueByKey(key []byte) (value []byte, ok bool)
	// FindKeyByPosition returns the i-th key in insertion order, if any.
	FindKeyByPosition(i int) (key []byte, ok bool)
	// LastKey returns the most recently inserted key, if the slot is
	// non-empty.
	LastKey() (key []byte, ok bool)
	// MigrateLast pops the last entry out of the receiver and appends it
	// to dst — the primitive the bounded rehash step uses to move
	// entries one at a time without a full slot copy.
	MigrateLast(dst Slot)
	// InsertByType inserts or replaces (key, value), returning 1 if a new
	// entry was created, 0 if an existing one was replaced.
	InsertByType(key, value []byte) int
	// IterateAll invokes fn for every (key, value) pair currently held.
	IterateAll(fn func(key, value []byte))
}

// Factory constructs a fresh, empty Slot, injected so Dict is not
// hard-wired to one concrete slot implementation.
type Factory func() Slot
