package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanReliableAccepts(t *testing.T) {
	cases := []struct {
		in  string
		tag Tag
	}{
		{"0", TagSigned64},
		{"-1", TagSigned64},
		{"0.4", TagDouble64},
		{"299.5", TagFloat32},
		{"299.0", TagFloat32},
		{"9223372036854775808", TagUnsigned64},
		{"18446744073709551615", TagUnsigned64},
	}
	for _, c := range cases {
		v, err := ScanReliable([]byte(c.in))
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.tag, v.Tag, "input %q", c.in)
		require.Equal(t, c.in, string(Format(v)), "input %q", c.in)
	}
}

func TestScanReliableRejects(t *testing.T) {
	cases := []string{
		"",
		"299.5000",
		"03",
		".5",
		"-",
		"-18446744073709551615",
		"18446744073709551616",
	}
	for _, in := range cases {
		_, err := ScanReliable([]byte(in))
		require.Error(t, err, "input %q should be rejected", in)
	}
}

// TestScanReliableRejects20DigitOverflows checks that any 20-digit value
// formed by replacing one digit of u64::MAX with a larger digit is
// rejected.
func TestScanReliableRejects20DigitOverflows(t *testing.T) {
	maxDigits := []byte("18446744073709551615")
	for i, d := range maxDigits {
		for larger := d + 1; larger <= '9'; larger++ {
			corrupted := append([]byte(nil), maxDigits...)
			corrupted[i] = larger
			_, err := ScanReliable(corrupted)
			require.Error(t, err, "digit %d replaced with %c should overflow", i, larger)
		}
	}
}

func TestScanReliableDeterministic(t *testing.T) {
	v1, err1 := ScanReliable([]byte("299.5"))
	v2, err2 := ScanReliable([]byte("299.5"))
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, v1, v2)
}

func TestScanReliable128(t *testing.T) {
	v, err := ScanReliable128([]byte("-170141183460469231731687303715884105728"))
	require.NoError(t, err)
	require.Equal(t, TagSigned128, v.Tag)
	require.Equal(t, "-170141183460469231731687303715884105728", string(Format(v)))

	v, err = ScanReliable128([]byte("340282366920938463463374607431768211455"))
	require.NoError(t, err)
	require.Equal(t, TagUnsigned128, v.Tag)
	require.Equal(t, "340282366920938463463374607431768211455", string(Format(v)))
}

func TestScanReliable128NarrowsToSmallerTypes(t *testing.T) {
	// Still in the [20,40]-digit widening window but fits i64/u64.
	v, err := ScanReliable128([]byte("18446744073709551615")) // u64::MAX, 20 digits
	require.NoError(t, err)
	require.Equal(t, TagUnsigned64, v.Tag)
}

func TestScanReliable128FallsThroughForShortInputs(t *testing.T) {
	v, err := ScanReliable128([]byte("299.5"))
	require.NoError(t, err)
	require.Equal(t, TagFloat32, v.Tag)
}
