package multidict

import "math/bits"

// Scan implements stateless cursor iteration: call with cursor 0 to
// begin, feed each returned cursor back in; a returned 0 means the pass
// is complete. fn is invoked once per live entry (may be invoked more
// than once for the same key across a single pass if the table resizes
// mid-scan — the guarantee is "at least once", not "exactly once").
//
// The bit-reversed increment is what makes that guarantee hold across a
// table resize mid-scan, so it is kept verbatim rather than replaced
// with a simpler cursor scheme.
func (d *Dict) Scan(cursor uint64, fn func(key, value []byte)) uint64 {
	if d.state != Rehashing {
		return d.scanSteady(cursor, fn)
	}
	return d.scanRehashing(cursor, fn)
}

func (d *Dict) scanSteady(v uint64, fn func(key, value []byte)) uint64 {
	t := &d.ht[0]
	if t.size == 0 {
		return 0
	}
	mask := t.size - 1
	emitSlot(t.slots[v&mask], fn)
	v |= ^mask
	v = bits.Reverse64(v)
	v++
	v = bits.Reverse64(v)
	if v == 0 && d.metrics != nil {
		d.metrics.ScanWraps.Inc()
	}
	return v
}

func (d *Dict) scanRehashing(v uint64, fn func(key, value []byte)) uint64 {
	small, large := &d.ht[0], &d.ht[1]
	if small.size > large.size {
		small, large = large, small
	}
	m0, m1 := small.size-1, large.size-1

	emitSlot(small.slots[v&m0], fn)
	for {
		emitSlot(large.slots[v&m1], fn)
		v = (((v | m0) + 1) & ^m0) | (v & m0)
		if v&(m0^m1) == 0 {
			break
		}
	}
	v |= ^m0
	v = bits.Reverse64(v)
	v++
	v = bits.Reverse64(v)
	if v == 0 && d.metrics != nil {
		d.metrics.ScanWraps.Inc()
	}
	return v
}

func emitSlot(s Slot, fn func(key, value []byte)) {
	if s == nil {
		return
	}
	s.IterateAll(fn)
}
