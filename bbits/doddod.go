package bbits

import "github.com/rpcpool/datakit/codec/dod"

type dodDodSegment struct {
	keyBuf, valBuf     []byte
	keyW, valW         *dod.Writer
	keyT0, keyT1       int64
	valT0, valT1       int64
	count              int
	closed             bool
}

func newDodDodSegment() *dodDodSegment {
	s := &dodDodSegment{
		keyBuf: make([]byte, dod.SegmentBytes),
		valBuf: make([]byte, dod.SegmentBytes),
	}
	s.keyW = dod.NewWriter(s.keyBuf)
	s.valW = dod.NewWriter(s.valBuf)
	return s
}

// close shrinks the backing buffers down to the bytes actually used.
func (s *dodDodSegment) close() {
	s.keyBuf = s.keyBuf[:byteLenFor(s.keyW.UsedBits())]
	s.valBuf = s.valBuf[:byteLenFor(s.valW.UsedBits())]
	s.closed = true
}

func byteLenFor(usedBits int) int { return (usedBits + 7) / 8 }

// DodDod is the two-stream (key: dod, value: dod) variant of the
// segmented container.
type DodDod struct {
	segments []*dodDodSegment
	elements int
}

// NewDodDod returns an empty container.
func NewDodDod() *DodDod { return &DodDod{} }

// Elements reports the total number of appended (key, val) pairs.
func (c *DodDod) Elements() int { return c.elements }

// Segments reports the current segment count.
func (c *DodDod) Segments() int { return len(c.segments) }

// Append writes (key, val), rolling to a fresh segment if either stream
// would overflow the current one's 4 KiB budget. The overflow check runs
// before either write, so a roll never leaves a segment's two streams
// out of sync.
func (c *DodDod) Append(key, val int64) {
	if len(c.segments) == 0 {
		c.segments = append(c.segments, newDodDodSegment())
	}
	cur := c.segments[len(c.segments)-1]
	if cur.keyW.WouldOverflow() || cur.valW.WouldOverflow() {
		cur.close()
		cur = newDodDodSegment()
		c.segments = append(c.segments, cur)
	}
	if err := cur.keyW.Write(key); err != nil {
		panic(err)
	}
	if err := cur.valW.Write(val); err != nil {
		panic(err)
	}
	if cur.count == 0 {
		cur.keyT0, cur.valT0 = key, val
	} else if cur.count == 1 {
		cur.keyT1, cur.valT1 = key, val
	}
	cur.count++
	c.elements++
}

// GetOffsetCount reads count elements starting at offset, optionally
// computing Welford statistics over the returned values.
func (c *DodDod) GetOffsetCount(offset, count int64, withStats bool) (keys, vals []int64, stats *Stats, err error) {
	start, n, err := resolveOffsetCount(c.elements, offset, count)
	if err != nil {
		return nil, nil, nil, err
	}
	keys = make([]int64, 0, n)
	vals = make([]int64, 0, n)
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
		vr := dod.NewReaderSeeded(seg.valBuf, seg.count, seg.valT0, seg.valT1)
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
		floatVals := make([]float64, len(vals))
		for i, v := range vals {
			floatVals[i] = float64(v)
		}
		stats = computeStats(floatVals)
	}
	return keys, vals, stats, nil
}
