package numeric

import (
	"strconv"

	"github.com/rpcpool/datakit/primitives"
)

type scanError string

func (e scanError) Error() string { return string(e) }

// Expected refusals: ScanReliable returns these as plain errors, box
// left untouched — never panics, since malformed input is the ordinary
// case for a text scanner, not a contract violation.
var (
	ErrEmpty             = scanError("numeric: empty input")
	ErrInvalidForm       = scanError("numeric: invalid numeric form")
	ErrOverflow          = scanError("numeric: integer overflow")
	ErrRoundTripMismatch = scanError("numeric: value does not round-trip byte-exact")
)

const u64MaxDigits = "18446744073709551615" // u64::MAX, 20 digits

// ScanReliable parses buf under a byte-exact round-trip contract: on
// success, Format(result) reproduces buf exactly.
func ScanReliable(buf []byte) (Value, error) {
	if len(buf) == 0 {
		return Value{}, ErrEmpty
	}
	negative := false
	rest := buf
	if rest[0] == '-' {
		if len(rest) == 1 {
			return Value{}, ErrInvalidForm
		}
		negative = true
		rest = rest[1:]
	}
	if rest[0] == '.' {
		return Value{}, ErrInvalidForm
	}
	if rest[0] == '0' && len(rest) > 1 && rest[1] != '.' {
		return Value{}, ErrInvalidForm
	}

	dotPos := -1
	for i, b := range rest {
		switch {
		case b >= '0' && b <= '9':
		case b == '.':
			if dotPos >= 0 {
				return Value{}, ErrInvalidForm
			}
			dotPos = i
		default:
			return Value{}, ErrInvalidForm
		}
	}

	if dotPos < 0 {
		return scanInteger(buf, rest, negative)
	}
	return scanFloat(buf, rest, dotPos)
}

func scanInteger(orig, digits []byte, negative bool) (Value, error) {
	mag, ok := primitives.U64FromBufFast(digits)
	if !ok {
		return Value{}, ErrOverflow
	}
	n := len(digits)
	if negative && n == 20 {
		// No 20-digit negative value fits i64 or u64.
		return Value{}, ErrOverflow
	}
	if n == 20 && string(digits) > u64MaxDigits {
		return Value{}, ErrOverflow
	}

	const i64MaxU = uint64(1<<63 - 1)
	const i64MinMagU = uint64(1 << 63)

	limit := i64MaxU
	if negative {
		limit = i64MinMagU
	}
	if n < 19 || (n == 19 && mag <= limit) {
		var v Value
		v.Tag = TagSigned64
		if negative {
			if mag == i64MinMagU {
				v.I64 = -1 << 63
			} else {
				v.I64 = -int64(mag)
			}
		} else {
			v.I64 = int64(mag)
		}
		if !formatMatches(orig, Format(v)) {
			return Value{}, ErrRoundTripMismatch
		}
		return v, nil
	}
	if negative {
		return Value{}, ErrOverflow
	}
	v := Value{Tag: TagUnsigned64, U64: mag}
	if !formatMatches(orig, Format(v)) {
		return Value{}, ErrRoundTripMismatch
	}
	return v, nil
}

func scanFloat(orig, digits []byte, dotPos int) (Value, error) {
	fracDigits := len(digits) - dotPos - 1
	if fracDigits == 0 {
		return Value{}, ErrInvalidForm
	}
	last := digits[len(digits)-1]
	if last == '0' && digits[len(digits)-2] != '.' {
		return Value{}, ErrInvalidForm
	}
	f, err := strconv.ParseFloat(string(orig), 64)
	if err != nil {
		return Value{}, ErrInvalidForm
	}
	v := Value{F64: f, FracDigits: fracDigits}
	if float64(float32(f)) == f {
		v.Tag = TagFloat32
		v.F32 = float32(f)
	} else {
		v.Tag = TagDouble64
	}
	if !formatMatches(orig, Format(v)) {
		return Value{}, ErrRoundTripMismatch
	}
	return v, nil
}

func formatMatches(orig, formatted []byte) bool {
	if len(orig) != len(formatted) {
		return false
	}
	for i := range orig {
		if orig[i] != formatted[i] {
			return false
		}
	}
	return true
}

// Format is the canonical formatter the round-trip contract is defined
// against: reprinting a successfully-scanned Value reproduces the
// original input byte-for-byte.
func Format(v Value) []byte {
	var tmp [48]byte
	switch v.Tag {
	case TagSigned64:
		n := primitives.I64ToBuf(tmp[:], v.I64)
		return append([]byte(nil), tmp[:n]...)
	case TagUnsigned64:
		n := primitives.U64ToBuf(tmp[:], v.U64)
		return append([]byte(nil), tmp[:n]...)
	case TagSigned128:
		n := primitives.I128ToBuf(tmp[:], v.I128Hi, v.I128Lo)
		return append([]byte(nil), tmp[:n]...)
	case TagUnsigned128:
		n := primitives.U128ToBuf(tmp[:], v.U128)
		return append([]byte(nil), tmp[:n]...)
	case TagFloat32, TagDouble64:
		return []byte(strconv.FormatFloat(v.F64, 'f', v.FracDigits, 64))
	default:
		return nil
	}
}
