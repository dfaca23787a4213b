package multidict

import "github.com/rpcpool/datakit/primitives"

// GetRandomKey samples one live key: in STEADY, pick a random non-null
// bucket of HT[0]; in REHASHING, sample uniformly across the union of
// both tables, skipping HT[0] buckets below rehash_cursor (already
// migrated out). Returns false if the dict is empty.
func (d *Dict) GetRandomKey() (key, value []byte, ok bool) {
	if d.Count() == 0 {
		return nil, nil, false
	}
	for attempts := 0; attempts < 1000; attempts++ {
		var slot Slot
		if d.state != Rehashing {
			slot = d.randomBucket(&d.ht[0], 0)
		} else {
			lo := d.rehashCursor
			total := (d.ht[0].size - lo) + d.ht[1].size
			d.seed, _ = primitives.SplitMix64(d.seed)
			pick := d.seed % total
			if pick < d.ht[0].size-lo {
				slot = d.ht[0].slots[lo+pick]
			} else {
				slot = d.ht[1].slots[pick-(d.ht[0].size-lo)]
			}
		}
		if slot == nil || slot.Count() == 0 {
			continue
		}
		d.seed, _ = primitives.SplitMix64(d.seed)
		pos := int(d.seed % uint64(slot.Count()))
		k, found := slot.FindKeyByPosition(pos)
		if !found {
			continue
		}
		v, _ := slot.FindValueByKey(k)
		return k, v, true
	}
	return nil, nil, false
}

func (d *Dict) randomBucket(t *table, floor uint64) Slot {
	if t.size == 0 {
		return nil
	}
	d.seed, _ = primitives.SplitMix64(d.seed)
	return t.slots[floor+d.seed%(t.size-floor)]
}

// Free drops both tables, with every slot in them, and resets the dict
// to its zero state.
func (d *Dict) Free() {
	d.ht[0] = table{}
	d.ht[1] = table{}
	d.state = Steady
	d.rehashCursor = 0
	d.usedBytes = 0
	d.iterators = 0
}
