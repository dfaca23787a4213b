package numeric

import (
	"math/bits"

	"github.com/rpcpool/datakit/primitives"
)

// i64MaxMag and i64MinMag are the i64 bounds expressed as unsigned
// magnitudes, reused from the narrowing logic in scan.go's shape.
const (
	i64MaxMag = uint64(1<<63 - 1)
	i64MinMag = uint64(1 << 63)
)

// u64Max is the full 64-bit magnitude ceiling for narrowing u128 -> u64.
var u64Max = primitives.Uint128{Hi: 0, Lo: ^uint64(0)}

// i128MinMag is 2^127, the magnitude of i128::MIN, expressed as a
// Uint128 — the two's-complement bit pattern of i128::MIN negated is
// itself, so this doubles as i128::MIN's raw bit pattern.
var i128MinMag = primitives.Uint128{Hi: 1 << 63, Lo: 0}

// ScanReliable128 is the 128-bit widening entry point: for inputs that
// are all digits (after an optional leading '-') with a digit span of
// [20, 40] bytes it parses to i128/u128 and narrows to i64/u64 where
// representable; any other input falls through to ScanReliable.
func ScanReliable128(buf []byte) (Value, error) {
	if len(buf) == 0 {
		return Value{}, ErrEmpty
	}
	negative := false
	digits := buf
	if digits[0] == '-' {
		if len(digits) == 1 {
			return Value{}, ErrInvalidForm
		}
		negative = true
		digits = digits[1:]
	}
	if len(digits) < 20 || len(digits) > 40 {
		return ScanReliable(buf)
	}
	if !primitives.IsDigits(digits) {
		return ScanReliable(buf)
	}
	if digits[0] == '0' {
		return Value{}, ErrInvalidForm
	}

	mag := primitives.Uint128{}
	for _, b := range digits {
		var overflow bool
		mag, overflow = mag.MulU64(10)
		if overflow {
			return Value{}, ErrOverflow
		}
		mag, overflow = mag.AddU64(uint64(b - '0'))
		if overflow {
			return Value{}, ErrOverflow
		}
	}

	var v Value
	switch {
	case negative && mag.Cmp(i64MinMag128()) <= 0:
		v.Tag = TagSigned64
		if mag.Cmp(i64MinMag128()) == 0 {
			v.I64 = -1 << 63
		} else {
			v.I64 = -int64(mag.Lo)
		}
	case negative && mag.Cmp(i128MinMag) <= 0:
		v.Tag = TagSigned128
		v.I128Hi, v.I128Lo = negate128(mag.Hi, mag.Lo)
	case negative:
		return Value{}, ErrOverflow
	case mag.Cmp(uint128FromU64(i64MaxMag)) <= 0:
		v.Tag = TagSigned64
		v.I64 = int64(mag.Lo)
	case mag.Cmp(u64Max) <= 0:
		v.Tag = TagUnsigned64
		v.U64 = mag.Lo
	default:
		v.Tag = TagUnsigned128
		v.U128 = mag
	}

	if !formatMatches(buf, Format(v)) {
		return Value{}, ErrRoundTripMismatch
	}
	return v, nil
}

func i64MinMag128() primitives.Uint128 { return uint128FromU64(i64MinMag) }

func uint128FromU64(v uint64) primitives.Uint128 { return primitives.Uint128{Hi: 0, Lo: v} }

// negate128 returns the two's-complement negation of a magnitude's bit
// pattern, used to build a negative Int128's hi/lo representation.
func negate128(hi, lo uint64) (nhi, nlo uint64) {
	nlo = ^lo
	nhi = ^hi
	var carry uint64
	nlo, carry = bits.Add64(nlo, 1, 0)
	nhi, _ = bits.Add64(nhi, 0, carry)
	return nhi, nlo
}
