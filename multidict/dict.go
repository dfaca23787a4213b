package multidict

import (
	"math/bits"

	logging "github.com/ipfs/go-log/v2"

	"github.com/rpcpool/datakit/primitives"
)

var log = logging.Logger("multidict")

// State is the dict's two-table state machine: STEADY while only HT[0]
// is populated, REHASHING once a resize has allocated HT[1] and begun
// migrating buckets across.
type State int

const (
	Steady State = iota
	Rehashing
)

func (s State) String() string {
	if s == Rehashing {
		return "REHASHING"
	}
	return "STEADY"
}

type table struct {
	slots []Slot
	size  uint64
	count uint64
}

// Dict is an incrementally-rehashed two-table hash index. It is
// single-threaded and cooperative throughout: it holds no internal
// locking, and callers are responsible for synchronizing access
// externally.
type Dict struct {
	ht           [2]table
	state        State
	rehashCursor uint64
	seed         uint64
	factory      Factory
	usedBytes    uint64
	iterators    int
	metrics      *Metrics
}

// Option configures a Dict at construction.
type Option func(*Dict)

// WithMetrics attaches an optional Prometheus metrics surface; callers
// that don't need observability can omit it entirely.
func WithMetrics(m *Metrics) Option {
	return func(d *Dict) { d.metrics = m }
}

// New returns an empty Dict. seed must be in [0, 2^20).
func New(factory Factory, seed uint64, opts ...Option) *Dict {
	d := &Dict{factory: factory, seed: seed & (1<<20 - 1)}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Count returns the total number of live key/value pairs.
func (d *Dict) Count() uint64 { return d.ht[0].count + d.ht[1].count }

// State reports STEADY or REHASHING.
func (d *Dict) State() State { return d.state }

// UsedBytes reports the tracked uncompressed byte footprint across every
// slot. The counter is kept current on every insert/delete but does not
// itself drive any automatic resize decision — that policy is left to
// the caller.
func (d *Dict) UsedBytes() uint64 { return d.usedBytes }

// Stats is a read-only snapshot of a Dict's bookkeeping, useful for the
// bench CLI and for tests asserting rehash progress.
type Stats struct {
	Count        uint64
	UsedBytes    uint64
	Rehashing    bool
	RehashCursor uint64
	HT0Size      uint64
	HT1Size      uint64
}

// Stats returns a snapshot of the dict's current state.
func (d *Dict) Stats() Stats {
	return Stats{
		Count:        d.Count(),
		UsedBytes:    d.usedBytes,
		Rehashing:    d.state == Rehashing,
		RehashCursor: d.rehashCursor,
		HT0Size:      d.ht[0].size,
		HT1Size:      d.ht[1].size,
	}
}

func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << uint(64-bits.LeadingZeros64(n-1))
}

func (d *Dict) hash(key []byte) uint64 { return primitives.XXH64(key, d.seed) }

// Expand begins growing (or initially allocating) the table.
func (d *Dict) Expand(n uint64) {
	size := nextPow2(n)
	if size < 1 {
		size = 1
	}
	if d.ht[0].slots == nil {
		d.ht[0] = table{slots: make([]Slot, size), size: size}
		return
	}
	if size == d.ht[0].size {
		return
	}
	d.ht[1] = table{slots: make([]Slot, size), size: size}
	d.rehashCursor = 0
	d.state = Rehashing
	if d.metrics != nil {
		d.metrics.RehashStarted.Inc()
	}
}

// maybeRehashStep performs one bounded rehash step before any mutating
// operation while REHASHING, unless an iterator is outstanding, in which
// case progress is suppressed until every iterator is released.
func (d *Dict) maybeRehashStep() {
	if d.state != Rehashing || d.iterators > 0 {
		return
	}
	d.rehashStep(1)
}

// rehashStep migrates buckets from HT[0] into HT[1], bounded to n
// buckets (plus a bounded scan past empty ones) so a single call never
// does unbounded work.
func (d *Dict) rehashStep(n int) {
	if d.state != Rehashing {
		return
	}
	emptyVisits := n * 5
	for i := 0; i < n && d.ht[0].count > 0; i++ {
		for d.rehashCursor < d.ht[0].size && d.ht[0].slots[d.rehashCursor] == nil {
			d.rehashCursor++
			emptyVisits--
			if emptyVisits == 0 {
				return
			}
		}
		if d.rehashCursor >= d.ht[0].size {
			break
		}
		slot := d.ht[0].slots[d.rehashCursor]
		for {
			k, ok := slot.LastKey()
			if !ok {
				break
			}
			t := d.hash(k) & (d.ht[1].size - 1)
			if slot.Count() == 1 && d.ht[1].slots[t] == nil {
				d.ht[1].slots[t] = slot
				d.ht[0].count--
				d.ht[1].count++
				break
			}
			if d.ht[1].slots[t] == nil {
				d.ht[1].slots[t] = d.factory()
			}
			slot.MigrateLast(d.ht[1].slots[t])
			d.ht[0].count--
			d.ht[1].count++
		}
		d.ht[0].slots[d.rehashCursor] = nil
		d.rehashCursor++
	}
	if d.ht[0].count == 0 {
		d.ht[0] = d.ht[1]
		d.ht[1] = table{}
		d.rehashCursor = 0
		d.state = Steady
		if d.metrics != nil {
			d.metrics.RehashCompleted.Inc()
		}
	}
}

// Find looks up key. While REHASHING, HT[1] is checked first since
// newer writes land there.
func (d *Dict) Find(key []byte) (value []byte, ok bool) {
	d.maybeRehashStep()
	if d.state == Rehashing {
		if v, ok := d.lookupIn(1, key); ok {
			return v, true
		}
	}
	return d.lookupIn(0, key)
}

func (d *Dict) lookupIn(ti int, key []byte) ([]byte, bool) {
	t := &d.ht[ti]
	if t.size == 0 {
		return nil, false
	}
	slot := t.slots[d.hash(key)&(t.size-1)]
	if slot == nil {
		return nil, false
	}
	return slot.FindValueByKey(key)
}

// Add inserts or replaces (key, value).
func (d *Dict) Add(key, value []byte) {
	d.maybeRehashStep()
	if d.ht[0].slots == nil {
		d.Expand(4)
	}
	ti := 0
	if d.state == Rehashing {
		ti = 1
	}
	t := &d.ht[ti]
	idx := d.hash(key) & (t.size - 1)
	if t.slots[idx] == nil {
		t.slots[idx] = d.factory()
	}
	slot := t.slots[idx]
	before := slot.SizeBytes()
	result := slot.InsertByType(key, value)
	after := slot.SizeBytes()
	if after >= before {
		d.usedBytes += uint64(after - before)
	} else {
		d.usedBytes -= uint64(before - after)
	}
	if result == 1 {
		t.count++
	}
}

// Delete removes key, reporting whether it existed.
func (d *Dict) Delete(key []byte) bool {
	d.maybeRehashStep()
	for _, ti := range []int{1, 0} {
		t := &d.ht[ti]
		if t.size == 0 {
			continue
		}
		idx := d.hash(key) & (t.size - 1)
		slot := t.slots[idx]
		if slot == nil {
			continue
		}
		before := slot.SizeBytes()
		if slot.RemoveEntry(key) {
			after := slot.SizeBytes()
			d.usedBytes -= uint64(before - after)
			t.count--
			return true
		}
	}
	return false
}
