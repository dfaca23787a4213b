// Package xfloat is an extended-float shim: integer/float comparison
// that is correct at the bit level, and a pow10 computation with a
// wider-than-float64 intermediate. Go's float64
// already carries a 52-bit mantissa computed in hardware, so there is
// no portable "wider than double" software mantissa available here;
// math/big.Float stands in as the wider intermediate for the rare path
// that needs more precision than float64 alone.
package xfloat

import (
	"math"
	"math/big"
)

// Ordering is the three-way comparison result.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// HasExtendedPrecision reports whether the runtime pow10 path uses a
// wider-than-float64 intermediate. This implementation always computes
// pow10 via math/big.Float with extra mantissa bits, so callers that
// branch on it get the higher-precision path unconditionally.
func HasExtendedPrecision() bool { return true }

// Pow10 returns 10^e for 1 <= e <= 341, computed with at least 64 bits of
// mantissa precision via math/big before rounding to float64.
func Pow10(e int) float64 {
	if e < 1 || e > 341 {
		panic("xfloat: Pow10 exponent out of range")
	}
	f := new(big.Float).SetPrec(128).SetInt64(1)
	ten := new(big.Float).SetPrec(128).SetInt64(10)
	for i := 0; i < e; i++ {
		f.Mul(f, ten)
	}
	v, _ := f.Float64()
	return v
}

// CmpI64F64 compares a signed 64-bit integer against a double: NaN
// sorts as greater than everything, and integers that don't fit exactly
// in a double are compared via truncation plus fractional residual
// rather than a lossy round-trip through float64.
func CmpI64F64(i int64, d float64) Ordering {
	if math.IsNaN(d) {
		return Less
	}
	if math.IsInf(d, 1) {
		return Less
	}
	if math.IsInf(d, -1) {
		return Greater
	}
	// Exact range check: float64 represents all integers up to 2^53
	// exactly; outside that range we must avoid a lossy conversion.
	const exactLimit = 1 << 53
	if i >= -exactLimit && i <= exactLimit {
		fi := float64(i)
		switch {
		case fi < d:
			return Less
		case fi > d:
			return Greater
		default:
			return Equal
		}
	}
	trunc := math.Trunc(d)
	if trunc < -9.223372036854776e18 || trunc >= 9.223372036854776e18 {
		if d < 0 {
			return Greater
		}
		return Less
	}
	ti := int64(trunc)
	switch {
	case i < ti:
		return Less
	case i > ti:
		return Greater
	default:
		frac := d - trunc
		if frac > 0 {
			return Less
		}
		if frac < 0 {
			return Greater
		}
		return Equal
	}
}

// CmpU64F64 compares an unsigned 64-bit integer against a double.
func CmpU64F64(u uint64, d float64) Ordering {
	if math.IsNaN(d) {
		return Less
	}
	if math.IsInf(d, 1) {
		return Less
	}
	if math.IsInf(d, -1) || d < 0 {
		return Greater
	}
	const exactLimit = 1 << 53
	if u <= exactLimit {
		fu := float64(u)
		switch {
		case fu < d:
			return Less
		case fu > d:
			return Greater
		default:
			return Equal
		}
	}
	trunc := math.Trunc(d)
	if trunc >= 1.8446744073709552e19 {
		return Less
	}
	tu := uint64(trunc)
	switch {
	case u < tu:
		return Less
	case u > tu:
		return Greater
	default:
		frac := d - trunc
		if frac > 0 {
			return Less
		}
		if frac < 0 {
			return Greater
		}
		return Equal
	}
}
