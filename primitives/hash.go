package primitives

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hash wrappers over two xxHash families, each seeded per call so a
// caller like multidict can derive an independent hash space per dict
// instance from its own seed.

// XXH64 hashes buf with xxHash64, seeded.
func XXH64(buf []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	d.Write(buf) //nolint:errcheck // hash.Hash.Write never errors
	return d.Sum64()
}

// XXH3_64 hashes buf with XXH3-64, seeded.
func XXH3_64(buf []byte, seed uint64) uint64 {
	return xxh3.HashSeed(buf, seed)
}

// XXH3_128 hashes buf with XXH3-128, seeded.
func XXH3_128(buf []byte, seed uint64) (hi, lo uint64) {
	h := xxh3.Hash128Seed(buf, seed)
	return h.Hi, h.Lo
}

// DJB2Lower is a case-insensitive hash variant: djb2 over lowercased
// ASCII bytes, non-ASCII bytes untouched.
func DJB2Lower(buf []byte) uint64 {
	h := uint64(5381)
	for _, b := range buf {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		h = h*33 + uint64(b)
	}
	return h
}
