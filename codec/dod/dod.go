// Package dod implements the delta-of-delta integer codec used to
// compress monotone-ish time-series keys: a leading bit selects "same
// dod as last time", otherwise a prefix ladder picks one of several
// widening signed-bit buckets to hold the delta-of-delta value. It
// shares the internal/bitio bit cursor with the xof codec.
package dod

import "github.com/rpcpool/datakit/internal/bitio"

// SegmentBytes is the fixed backing-buffer size every writer/reader
// operates over.
const SegmentBytes = 4096

// overflowGuardBits is the worst-case bits a single write can consume.
const overflowGuardBits = 72

type codecError string

func (e codecError) Error() string { return string(e) }

// ErrOverflow is returned by Write when the next element might not fit in
// the remaining segment budget; the caller (bbits) must roll to a new
// segment.
var ErrOverflow = codecError("dod: write would overflow segment")

// Writer is the append-only dod bit-stream writer over a fixed 4 KiB
// buffer.
type Writer struct {
	bw     *bitio.Writer
	count  int
	t0, t1 int64
}

// NewWriter wraps a zeroed 4 KiB buffer.
func NewWriter(buf []byte) *Writer { return &Writer{bw: bitio.NewWriter(buf)} }

// UsedBits reports the bits consumed so far.
func (w *Writer) UsedBits() int { return w.bw.UsedBits }

// Count reports the number of values written.
func (w *Writer) Count() int { return w.count }

// T0T1 returns the two most recently recorded original values, the
// literals a segmented container seeds a Reader with.
func (w *Writer) T0T1() (t0, t1 int64) { return w.t0, w.t1 }

// WouldOverflow reports whether the next Write might not fit the
// remaining segment budget, letting a caller (bbits) decide to roll to a
// fresh segment before committing a write.
func (w *Writer) WouldOverflow() bool {
	return w.bw.UsedBits+overflowGuardBits > SegmentBytes*8
}

// Write appends v, returning ErrOverflow without mutating state if the
// worst-case width would not fit in the remaining budget.
func (w *Writer) Write(v int64) error {
	if w.WouldOverflow() {
		return ErrOverflow
	}
	switch w.count {
	case 0:
		w.bw.WriteBits(uint64(v), 64)
		w.t0 = v
	case 1:
		writeSigned(w.bw, v-w.t0)
		w.t1 = v
	default:
		dod := (v - w.t1) - (w.t1 - w.t0)
		writeSigned(w.bw, dod)
		w.t0, w.t1 = w.t1, v
	}
	w.count++
	return nil
}

// writeSigned encodes delta with the Gorilla-style prefix ladder: '0' for
// zero, then widening signed buckets of 7/9/12/32 bits gated by 2/3/4/4
// bit prefixes.
func writeSigned(bw *bitio.Writer, delta int64) {
	switch {
	case delta == 0:
		bw.WriteBit(0)
	case delta >= -64 && delta <= 63:
		bw.WriteBits(0b10, 2)
		bw.WriteBits(uint64(delta)&0x7F, 7)
	case delta >= -256 && delta <= 255:
		bw.WriteBits(0b110, 3)
		bw.WriteBits(uint64(delta)&0x1FF, 9)
	case delta >= -2048 && delta <= 2047:
		bw.WriteBits(0b1110, 4)
		bw.WriteBits(uint64(delta)&0xFFF, 12)
	default:
		bw.WriteBits(0b1111, 4)
		bw.WriteBits(uint64(delta)&0xFFFFFFFF, 32)
	}
}

func readSigned(br *bitio.Reader) int64 {
	if br.ReadBit() == 0 {
		return 0
	}
	if br.ReadBit() == 0 {
		return signExtend(br.ReadBits(7), 7)
	}
	if br.ReadBit() == 0 {
		return signExtend(br.ReadBits(9), 9)
	}
	if br.ReadBit() == 0 {
		return signExtend(br.ReadBits(12), 12)
	}
	return signExtend(br.ReadBits(32), 32)
}

func signExtend(v uint64, width int) int64 {
	shift := uint(64 - width)
	return int64(v<<shift) >> shift
}

// Reader decodes a dod segment sequentially from the start. A segmented
// container caches each segment's first two raw values (keyT0/keyT1,
// valT0/valT1) and seeds the reader with them rather than re-trusting
// the bitstream-decoded copies; NewReaderSeeded exposes that path while
// still consuming the same bits so the cursor lands in the right place
// for element 2 onward. NewReader is the unseeded equivalent, useful
// standalone / in tests.
type Reader struct {
	br          *bitio.Reader
	remaining   int
	seen        int
	t0, t1      int64
	seededT0    int64
	seededT1    int64
	hasSeed     bool
}

// NewReader decodes count values starting at the beginning of buf.
func NewReader(buf []byte, count int) *Reader {
	return &Reader{br: bitio.NewReader(buf), remaining: count}
}

// NewReaderSeeded is NewReader, but substitutes t0/t1 for the values
// decoded from the stream's first two elements.
func NewReaderSeeded(buf []byte, count int, t0, t1 int64) *Reader {
	return &Reader{br: bitio.NewReader(buf), remaining: count, seededT0: t0, seededT1: t1, hasSeed: true}
}

// Next returns the next decoded value, or ok=false once count values have
// been consumed.
func (r *Reader) Next() (v int64, ok bool) {
	if r.remaining <= 0 {
		return 0, false
	}
	r.remaining--
	switch r.seen {
	case 0:
		raw := int64(r.br.ReadBits(64))
		if r.hasSeed {
			raw = r.seededT0
		}
		r.t0 = raw
		v = raw
	case 1:
		delta := readSigned(r.br)
		raw := r.t0 + delta
		if r.hasSeed {
			raw = r.seededT1
		}
		r.t1 = raw
		v = raw
	default:
		delta := readSigned(r.br)
		v = r.t1 + (r.t1 - r.t0) + delta
		r.t0, r.t1 = r.t1, v
	}
	r.seen++
	return v, true
}
