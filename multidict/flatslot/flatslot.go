// Package flatslot is the concrete Slot implementation used by default
// throughout this module: an insertion-ordered slice of (key, value)
// pairs with linear lookup. It is the simplest implementation that
// satisfies the slot capability interface — production deployments with
// larger per-bucket fan-out might swap in a compact encoded variant, but
// a small linear list is the right default for typical bucket sizes.
package flatslot

import "github.com/rpcpool/datakit/multidict"

type entry struct {
	key, value []byte
}

// Slot is a linear, insertion-ordered list of entries.
type Slot struct {
	entries []entry
}

// New returns an empty flatslot.Slot. Its signature matches
// multidict.Factory.
func New() multidict.Slot { return &Slot{} }

// SizeBytes reports the sum of every key/value pair's byte length.
func (s *Slot) SizeBytes() uint32 {
	var n uint32
	for _, e := range s.entries {
		n += uint32(len(e.key) + len(e.value))
	}
	return n
}

// Count reports the number of entries.
func (s *Slot) Count() uint32 { return uint32(len(s.entries)) }

func (s *Slot) indexOf(key []byte) int {
	for i, e := range s.entries {
		if string(e.key) == string(key) {
			return i
		}
	}
	return -1
}

// GetOrCreateEntry reports whether key was newly created (value left
// empty for the caller to fill via InsertByType).
func (s *Slot) GetOrCreateEntry(key []byte) bool {
	if s.indexOf(key) >= 0 {
		return false
	}
	s.entries = append(s.entries, entry{key: append([]byte(nil), key...)})
	return true
}

// RemoveEntry deletes key's entry, reporting whether it existed.
func (s *Slot) RemoveEntry(key []byte) bool {
	i := s.indexOf(key)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// FindValueByKey returns key's value, if present.
func (s *Slot) FindValueByKey(key []byte) ([]byte, bool) {
	i := s.indexOf(key)
	if i < 0 {
		return nil, false
	}
	return s.entries[i].value, true
}

// FindKeyByPosition returns the i-th key in insertion order.
func (s *Slot) FindKeyByPosition(i int) ([]byte, bool) {
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i].key, true
}

// LastKey returns the most recently appended key.
func (s *Slot) LastKey() ([]byte, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].key, true
}

// MigrateLast pops the receiver's last entry and appends it to dst.
func (s *Slot) MigrateLast(dst multidict.Slot) {
	if len(s.entries) == 0 {
		return
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	dst.InsertByType(last.key, last.value)
}

// InsertByType inserts or replaces (key, value).
func (s *Slot) InsertByType(key, value []byte) int {
	if i := s.indexOf(key); i >= 0 {
		s.entries[i].value = append([]byte(nil), value...)
		return 0
	}
	s.entries = append(s.entries, entry{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
	return 1
}

// IterateAll invokes fn for every entry in insertion order.
func (s *Slot) IterateAll(fn func(key, value []byte)) {
	for _, e := range s.entries {
		fn(e.key, e.value)
	}
}
