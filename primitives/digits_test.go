package primitives

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDigits(t *testing.T) {
	require.True(t, IsDigits([]byte("0123456789")))
	require.True(t, IsDigits(nil))
	require.False(t, IsDigits([]byte("12a")))
	require.False(t, IsDigits([]byte("-1")))
}

func TestU64ToBuf(t *testing.T) {
	var buf [20]byte
	for _, n := range []uint64{0, 1, 9, 10, 299, 18446744073709551615} {
		l := U64ToBuf(buf[:], n)
		require.Equal(t, strconv.FormatUint(n, 10), string(buf[:l]))
	}
}

func TestI64ToBuf(t *testing.T) {
	var buf [20]byte
	for _, n := range []int64{0, -1, 9223372036854775807, -9223372036854775808} {
		l := I64ToBuf(buf[:], n)
		require.Equal(t, strconv.FormatInt(n, 10), string(buf[:l]))
	}
}

func TestU9DigitsToBuf(t *testing.T) {
	var buf [9]byte
	U9DigitsToBuf(buf[:], 42)
	require.Equal(t, "000000042", string(buf[:]))
	U9DigitsToBuf(buf[:], 999999999)
	require.Equal(t, "999999999", string(buf[:]))
}

// TestU64FromBufFastMatchesScalarReference exhaustively checks every byte
// length 0..20 with every position of a non-digit byte against a scalar
// reference implementation.
func TestU64FromBufFastMatchesScalarReference(t *testing.T) {
	for n := 0; n <= 20; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = '5'
		}
		scalarParse(t, buf)
		for badPos := 0; badPos < n; badPos++ {
			corrupted := append([]byte(nil), buf...)
			corrupted[badPos] = 'x'
			scalarParse(t, corrupted)
		}
	}
	val, ok := U64FromBufFast([]byte("18446744073709551615"))
	require.True(t, ok)
	require.Equal(t, uint64(18446744073709551615), val)
	_, ok = U64FromBufFast([]byte("18446744073709551616"))
	require.False(t, ok)
	_, ok = U64FromBufFast([]byte(""))
	require.False(t, ok)
}

func scalarParse(t *testing.T, buf []byte) {
	t.Helper()
	want, werr := strconv.ParseUint(string(buf), 10, 64)
	got, ok := U64FromBufFast(buf)
	if werr != nil || len(buf) == 0 {
		require.False(t, ok, "expected failure for %q", buf)
		return
	}
	require.True(t, ok, "expected success for %q", buf)
	require.Equal(t, want, got)
}

func TestPopcount(t *testing.T) {
	require.Equal(t, 0, Popcount(nil))
	require.Equal(t, 8, Popcount([]byte{0xFF}))
	buf := make([]byte, 17)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.Equal(t, 17*8, Popcount(buf))
}
