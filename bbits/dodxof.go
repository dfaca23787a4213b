package bbits

import (
	"github.com/rpcpool/datakit/codec/dod"
	"github.com/rpcpool/datakit/codec/xof"
)

type dodXofSegment struct {
	keyBuf, valBuf []byte
	keyW           *dod.Writer
	valW           *xof.Writer
	keyT0, keyT1   int64
	count          int
	closed         bool
}

func newDodXofSegment() *dodXofSegment {
	s := &dodXofSegment{
		keyBuf: make([]byte, dod.SegmentBytes),
		valBuf: make([]byte, xof.SegmentBytes),
	}
	s.keyW = dod.NewWriter(s.keyBuf)
	s.valW = xof.NewWriter(s.valBuf)
	return s
}

func (s *dodXofSegment) close() {
	s.keyBuf = s.keyBuf[:byteLenFor(s.keyW.UsedBits())]
	s.valBuf = s.valBuf[:byteLenFor(s.valW.UsedBits())]
	s.closed = true
}

// DodXof is the (key: dod, value: xof) variant of the segmented
// container — keys (typically timestamps) delta-of-delta encoded, values
// (typically floats) XOR-of-floats encoded.
type DodXof struct {
	segments []*dodXofSegment
	elements int
}

// NewDodXof returns an empty container.
func NewDodXof() *DodXof { return &DodXof{} }

// Elements reports the total number of appended (key, val) pairs.
func (c *DodXof) Elements() int { return c.elements }

// Segments reports the current segment count.
func (c *DodXof) Segments() int { return len(c.segments) }

// Append writes (key, val), rolling to a fresh segment if either stream
// would overflow the current one's 4 KiB budget.
func (c *DodXof) Append(key int64, val float64) {
	if len(c.segments) == 0 {
		c.segments = append(c.segments, newDodXofSegment())
	}
	cur := c.segments[len(c.segments)-1]
	if cur.keyW.WouldOverflow() || cur.valW.WouldOverflow() {
		cur.close()
		cur = newDodXofSegment()
		c.segments = append(c.segments, cur)
	}
	if err := cur.keyW.Write(key); err != nil {
		panic(err)
	}
	if err := cur.valW.Write(val); err != nil {
		panic(err)
	}
	if cur.count == 0 {
		cur.keyT0 = key
	} else if cur.count == 1 {
		cur.keyT1 = key
	}
	cur.count++
	c.elements++
}

// GetOffsetCount reads count elements starting at offset, optionally
// computing Welford statistics over the returned values.
func (c *DodXof) GetOffsetCount(offset, count int64, withStats bool) (keys []int64, vals []float64, stats *Stats, err error) {
	start, n, err := resolveOffsetCount(c.elements, offset, count)
	if err != nil {
		return nil, nil, nil, err
	}
	keys = make([]int64, 0, n)
	vals = make([]float64, 0, n)
	skip := start
	remaining := n
	for _, seg := range c.segments {
		if remaining == 0 {
			break
		}
		if skip >= seg.count {
			skip -= seg.count
			continue
		}
		kr := dod.NewReaderSeeded(seg.keyBuf, seg.count, seg.keyT0, seg.keyT1)
		vr := xof.NewReader(seg.valBuf, seg.count)
		for i := 0; i < seg.count; i++ {
			k, _ := kr.Next()
			v, _ := vr.Next()
			if i < skip {
				continue
			}
			if remaining == 0 {
				break
			}
			keys = append(keys, k)
			vals = append(vals, v)
			remaining--
		}
		skip = 0
	}
	if withStats {
		stats = computeStats(vals)
	}
	return keys, vals, stats, nil
}
