// Package dks implements a size-classed mutable string buffer: a
// packed-header byte string with six storage widths and in-place class
// promotion on growth.
//
// Rather than a raw payload pointer with the header living in the bytes
// immediately before it, this port exposes a first-class DksClass sum
// type instead of reading two or three header bits by hand, and a *Dks
// handle instead of a bare pointer. The on-the-wire header layout is
// still reproduced exactly — see Header()/PackHeader() below — for
// bit-level interop with the packed big-endian header format.
package dks

import "fmt"

// DksClass is the storage class discriminant: how many header bytes
// precede the payload and how many of the low header bits are carved out
// for the type tag.
type DksClass uint8

const (
	W8 DksClass = iota
	W16
	W24
	W32
	W40
	W48
)

func (c DksClass) String() string {
	switch c {
	case W8:
		return "W8"
	case W16:
		return "W16"
	case W24:
		return "W24"
	case W32:
		return "W32"
	case W40:
		return "W40"
	case W48:
		return "W48"
	default:
		return fmt.Sprintf("DksClass(%d)", uint8(c))
	}
}

// classInfo is one storage class's header layout. Packing both length
// and free into the same hdrBytes-wide integer at their independently
// stated maxima isn't bit-budget feasible (their product would need to
// fit, not their sum), so the header stores only `length`, MSB-first,
// with the type tag in the low hdrBits bits — identical shape for every
// class, so MaxLength grows monotonically with hdrBytes. `free` is not
// packed into the header at all: it is tracked as present-or-not by the
// compact flag (compact classes always report free=0, full classes
// derive free from the backing Go slice's spare capacity — the natural
// Go analogue of allocator slack kept past a NUL sentinel).
type classInfo struct {
	hdrBits  uint8
	hdrBytes uint8
	typeTag  uint8
	compact  bool
}

var table = [6]classInfo{
	W8:  {hdrBits: 2, hdrBytes: 1, typeTag: 0, compact: true},
	W16: {hdrBits: 2, hdrBytes: 2, typeTag: 2, compact: false},
	W24: {hdrBits: 3, hdrBytes: 3, typeTag: 1, compact: true},
	W32: {hdrBits: 3, hdrBytes: 4, typeTag: 3, compact: false},
	W40: {hdrBits: 3, hdrBytes: 5, typeTag: 5, compact: false},
	W48: {hdrBits: 3, hdrBytes: 6, typeTag: 7, compact: false},
}

// HeaderBytes returns header_size(class): the number of bytes the packed
// header occupies.
func (c DksClass) HeaderBytes() int { return int(table[c].hdrBytes) }

// HdrBits returns the number of low header bits reserved for the type tag
// (2 for W8/W16, 3 for everything wider).
func (c DksClass) HdrBits() uint8 { return table[c].hdrBits }

// TypeTag returns the packed type-tag value for this class.
func (c DksClass) TypeTag() uint8 { return table[c].typeTag }

// MaxLength returns the largest length representable in this class's
// header: all non-tag bits, MSB-first.
func (c DksClass) MaxLength() uint64 {
	usable := uint(table[c].hdrBytes)*8 - uint(table[c].hdrBits)
	return 1<<usable - 1
}

// MaxFree returns the largest free count this class admits: 0 for compact
// classes (which never track free space), otherwise the same bound as
// MaxLength since free shares no header bits of its own to further
// restrict it.
func (c DksClass) MaxFree() uint64 {
	if table[c].compact {
		return 0
	}
	return c.MaxLength()
}

// compact reports whether this class packs only length in the header
// (free is implicitly 0): true for W8 and W24, mirroring the source's
// "compact" vs "full" distinction — W8/W24 favor a denser single-purpose
// header for short immutable-looking strings, W16/W32/W40/W48 track
// free space via their backing slice's spare capacity.
func (c DksClass) compact() bool { return table[c].compact }

// ChooseClass returns the smallest class whose MaxLength >= length and
// MaxFree >= free (free is ignored for compact classes, which always
// report free=0; choosing one of them requires free==0).
func ChooseClass(length, free uint64) (DksClass, error) {
	for c := W8; c <= W48; c++ {
		if c.compact() {
			if free != 0 {
				continue
			}
			if length <= c.MaxLength() {
				return c, nil
			}
			continue
		}
		if length <= c.MaxLength() && free <= c.MaxFree() {
			return c, nil
		}
	}
	return 0, ErrSizeTooLarge
}

// ErrSizeTooLarge reports that length/free exceeds what even W48 can
// represent. This is a contract violation rather than an expected
// refusal, so call sites that detect it panic instead of returning it
// silently; it is still exported as an error value so callers
// constructing it via ChooseClass can choose to propagate or panic.
var ErrSizeTooLarge = dksError("dks: size exceeds W48")

type dksError string

func (e dksError) Error() string { return string(e) }
