package dks

import (
	"github.com/rpcpool/datakit/internal/sizeclass"
	"github.com/rpcpool/datakit/primitives"
)

// Dks is the size-classed mutable byte string. Rather than a single
// allocation with a packed header living immediately before the
// payload, this handle keeps `class` as an explicit field and lets the
// backing Go slice's len/cap stand in for length/avail directly, so the
// header width is computed from the discriminant rather than re-derived
// from bytes on every access. PackHeader/UnpackHeader in header.go exist
// purely for the bit-exact interop surface; ordinary mutation never
// touches them.
type Dks struct {
	class   DksClass
	buf     []byte
	sizeFor sizeclass.SizeFor
}

// Option configures a *Dks at construction time.
type Option func(*Dks)

// WithSizeFor injects the allocator bucket-size oracle the growth
// algorithm consults. Defaults to sizeclass.Default.
func WithSizeFor(f sizeclass.SizeFor) Option {
	return func(d *Dks) { d.sizeFor = f }
}

// New returns a Dks holding a copy of init (nil is treated as empty),
// with the smallest storage class that fits it and zero free space.
func New(init []byte, opts ...Option) *Dks {
	d := &Dks{sizeFor: sizeclass.Default}
	for _, o := range opts {
		o(d)
	}
	class, err := ChooseClass(uint64(len(init)), 0)
	if err != nil {
		panic(err)
	}
	d.class = class
	d.buf = append(make([]byte, 0, len(init)), init...)
	return d
}

// Len returns the current populated length.
func (d *Dks) Len() uint64 { return uint64(len(d.buf)) }

// Avail returns the free bytes beyond Len currently reserved, capped at
// max_free(class) — any actual backing-array headroom beyond that cap
// is a hidden reserve that stays physically available but unreported
// until a future class promotion brings it back into range.
func (d *Dks) Avail() uint64 {
	if d.class.compact() {
		return 0
	}
	real := uint64(cap(d.buf) - len(d.buf))
	if max := d.class.MaxFree(); real > max {
		return max
	}
	return real
}

// AllocSize returns header + length + avail + 1 (the trailing NUL
// sentinel byte).
func (d *Dks) AllocSize() uint64 {
	return uint64(d.class.HeaderBytes()) + d.Len() + d.Avail() + 1
}

// Class reports the current storage class.
func (d *Dks) Class() DksClass { return d.class }

// Bytes returns the populated payload. Callers must not retain it across
// a mutating call — mutations may reallocate the backing array.
func (d *Dks) Bytes() []byte { return d.buf }

// Header encodes the current class/length as the packed big-endian
// header bytes, for bit-level interop with external readers.
func (d *Dks) Header() []byte {
	out := make([]byte, d.class.HeaderBytes())
	PackHeader(d.class, d.Len(), out)
	return out
}

// FreeZero overwrites the payload with zeroes before releasing it. Go is
// garbage collected so there is no explicit free; this exists for
// callers handling sensitive data that want the bytes scrubbed before
// the backing array becomes garbage.
func (d *Dks) FreeZero() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.buf = nil
}

// Dup returns an independent copy.
func (d *Dks) Dup() *Dks {
	cp := &Dks{class: d.class, sizeFor: d.sizeFor}
	cp.buf = append(make([]byte, 0, cap(d.buf)), d.buf...)
	return cp
}

// Clear truncates length to 0. The backing array's capacity is left
// untouched: the freed length becomes free (capped at max_free(current_class)
// per Avail's reporting rule), with any surplus beyond that cap kept as
// a hidden reserve the backing array still physically holds, recoverable
// without reallocation on a later grow. Class never changes.
func (d *Dks) Clear() {
	d.buf = d.buf[:0]
}

// growTarget runs the three-step growth algorithm: tentative class
// selection, allocator bucket rounding, and re-selection if rounding
// pushed the requirement into a larger class. Returns the class and
// total payload+free capacity (not counting header/NUL) to allocate.
func (d *Dks) growTarget(newPayloadSize uint64) (DksClass, uint64) {
	class, err := ChooseClass(newPayloadSize, newPayloadSize-d.Len())
	if err != nil {
		panic(err)
	}
	for {
		header := uint64(class.HeaderBytes())
		total := header + newPayloadSize + 1
		rounded := d.sizeFor(total)
		if rounded <= total {
			return class, newPayloadSize
		}
		grownPayload := rounded - header - 1
		biggerClass, err := ChooseClass(grownPayload, grownPayload-d.Len())
		if err != nil {
			panic(err)
		}
		if biggerClass == class && grownPayload == newPayloadSize {
			return class, grownPayload
		}
		newPayloadSize = grownPayload
		class = biggerClass
	}
}

// expand is the shared implementation for ExpandBy/ExpandByExact. exact
// skips the Fibonacci pre-rounding stage and grows straight to len+n
// before allocator-bucket rounding.
func (d *Dks) expand(n uint64, exact bool) {
	if n == 0 {
		return
	}
	need := d.Len() + n
	var target uint64
	if exact {
		target = need
	} else {
		target = sizeclass.Fib(uint64(cap(d.buf)), need)
	}
	class, grown := d.growTarget(target)
	if grown < need {
		grown = need
	}
	if class == d.class && uint64(cap(d.buf)) >= grown {
		return
	}
	nb := make([]byte, len(d.buf), grown)
	copy(nb, d.buf)
	d.buf = nb
	if class > d.class {
		d.class = class
	}
}

// ExpandBy ensures Avail() >= n, promoting class if necessary via the
// Fibonacci-then-bucket-rounded growth algorithm. Existing payload is
// preserved byte-for-byte.
func (d *Dks) ExpandBy(n uint64) { d.expand(n, false) }

// ExpandByExact is ExpandBy without the Fibonacci pre-rounding stage: it
// grows to exactly len+n before allocator bucket rounding.
func (d *Dks) ExpandByExact(n uint64) { d.expand(n, true) }

// RemoveFreeSpace shrinks the allocation to len+header+1, without
// demoting class: class only ever grows, never shrinks back down.
func (d *Dks) RemoveFreeSpace() {
	nb := make([]byte, len(d.buf))
	copy(nb, d.buf)
	d.buf = nb
}

// GrowZero appends zero bytes until Len() == m; no-op if m <= Len().
func (d *Dks) GrowZero(m uint64) {
	if m <= d.Len() {
		return
	}
	extra := m - d.Len()
	d.ExpandBy(extra)
	n := len(d.buf)
	d.buf = d.buf[:n+int(extra)]
	for i := n; i < len(d.buf); i++ {
		d.buf[i] = 0
	}
}

// Cat appends src, which may alias buf's own backing array (handled via
// copy-before-grow semantics, so the append stays correct even when src
// overlaps the destination).
func (d *Dks) Cat(src []byte) {
	if len(src) == 0 {
		return
	}
	tmp := append([]byte(nil), src...)
	d.ExpandBy(uint64(len(tmp)))
	n := len(d.buf)
	d.buf = d.buf[:n+len(tmp)]
	copy(d.buf[n:], tmp)
}

// Prepend inserts src at offset 0, shifting the existing payload right.
func (d *Dks) Prepend(src []byte) {
	if len(src) == 0 {
		return
	}
	old := append([]byte(nil), d.buf...)
	d.ExpandBy(uint64(len(src)))
	total := len(old) + len(src)
	d.buf = d.buf[:total]
	copy(d.buf[len(src):], old)
	copy(d.buf, src)
}

// Copy overwrites the payload with exactly src, resizing as needed.
func (d *Dks) Copy(src []byte) {
	need := uint64(len(src))
	if need > d.Len()+d.Avail() {
		d.ExpandByExact(need - d.Len())
	}
	d.buf = d.buf[:need]
	copy(d.buf, src)
}

// Trim removes leading/trailing bytes that are members of cset.
func (d *Dks) Trim(cset []byte) {
	member := make(map[byte]bool, len(cset))
	for _, c := range cset {
		member[c] = true
	}
	lo, hi := 0, len(d.buf)
	for lo < hi && member[d.buf[lo]] {
		lo++
	}
	for hi > lo && member[d.buf[hi-1]] {
		hi--
	}
	if lo == 0 && hi == len(d.buf) {
		return
	}
	n := copy(d.buf, d.buf[lo:hi])
	d.buf = d.buf[:n]
}

// Range applies negative-index (-1 = last byte) in-place slicing,
// clamping to string bounds; an inverted range yields the empty string.
func (d *Dks) Range(start, end int64) {
	l := int64(d.Len())
	start = normalizeIndex(start, l)
	end = normalizeIndex(end, l)
	if start < 0 {
		start = 0
	}
	if end >= l {
		end = l - 1
	}
	if l == 0 || start > end || start >= l {
		d.buf = d.buf[:0]
		return
	}
	n := copy(d.buf, d.buf[start:end+1])
	d.buf = d.buf[:n]
}

func normalizeIndex(i, length int64) int64 {
	if i < 0 {
		i = length + i
		if i < 0 {
			i = 0
		}
	}
	return i
}

// Substr returns a new, independently-owned Dks holding the byte-indexed
// slice [start, start+length), clamped to bounds.
func (d *Dks) Substr(start int64, length uint64) *Dks {
	l := int64(d.Len())
	start = normalizeIndex(start, l)
	if start < 0 {
		start = 0
	}
	if start >= l {
		return New(nil)
	}
	end := start + int64(length)
	if end > l {
		end = l
	}
	return New(d.buf[start:end])
}

// SubstrUTF8 is Substr indexed by codepoint count instead of bytes.
func (d *Dks) SubstrUTF8(start int64, length uint64) (*Dks, error) {
	total, ok := primitives.ValidCount(d.buf)
	if !ok {
		return nil, ErrInvalidUTF8
	}
	l := int64(total)
	start = normalizeIndex(start, l)
	if start < 0 {
		start = 0
	}
	if start >= l {
		return New(nil), nil
	}
	end := start + int64(length)
	if end > l {
		end = l
	}
	byteStart := primitives.CountBytesFor(d.buf, int(start))
	byteEnd := primitives.CountBytesFor(d.buf, int(end))
	if byteStart < 0 || byteEnd < 0 {
		return nil, ErrInvalidUTF8
	}
	return New(d.buf[byteStart:byteEnd]), nil
}

// XXH64 hashes the current payload, seeded.
func (d *Dks) XXH64(seed uint64) uint64 { return primitives.XXH64(d.buf, seed) }

// XXH3_64 hashes the current payload with XXH3-64, seeded.
func (d *Dks) XXH3_64(seed uint64) uint64 { return primitives.XXH3_64(d.buf, seed) }

// XXH3_128 hashes the current payload with XXH3-128, seeded.
func (d *Dks) XXH3_128(seed uint64) (hi, lo uint64) { return primitives.XXH3_128(d.buf, seed) }
