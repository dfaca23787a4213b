package primitives

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestValidAcceptsWellFormed(t *testing.T) {
	require.True(t, Valid([]byte("hello")))
	require.True(t, Valid([]byte("héllo wörld")))
	require.True(t, Valid([]byte("日本語")))
	require.True(t, Valid([]byte("\xf0\x9f\x98\x80"))) // emoji, 4-byte
}

func TestValidRejectsOverlong(t *testing.T) {
	// C0/C1 leaders: always overlong 2-byte encodings.
	require.False(t, Valid([]byte{0xC0, 0x80}))
	require.False(t, Valid([]byte{0xC1, 0xBF}))
	// E0 80-9F: overlong 3-byte.
	require.False(t, Valid([]byte{0xE0, 0x80, 0x80}))
	require.False(t, Valid([]byte{0xE0, 0x9F, 0xBF}))
	// F0 80-8F: overlong 4-byte.
	require.False(t, Valid([]byte{0xF0, 0x80, 0x80, 0x80}))
}

func TestValidRejectsSurrogates(t *testing.T) {
	// U+D800..U+DFFF encoded as 3-byte sequences (ED A0 80 .. ED BF BF).
	require.False(t, Valid([]byte{0xED, 0xA0, 0x80}))
	require.False(t, Valid([]byte{0xED, 0xBF, 0xBF}))
}

func TestValidRejectsBeyondMax(t *testing.T) {
	// U+10FFFF is the max; F4 90 80 80 would be U+110000.
	require.False(t, Valid([]byte{0xF4, 0x90, 0x80, 0x80}))
	// F5-FF are never valid leaders.
	require.False(t, Valid([]byte{0xF5, 0x80, 0x80, 0x80}))
	require.False(t, Valid([]byte{0xFF}))
}

func TestValidRejectsTruncated(t *testing.T) {
	require.False(t, Valid([]byte{0xE0, 0xA0})) // missing 3rd byte
	require.False(t, Valid([]byte{0xC2}))        // missing 2nd byte
	require.False(t, Valid([]byte{0x80}))        // orphan continuation
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, cp := range []rune{'A', 0xE9, 0x65E5, 0x1F600} {
		var out []byte
		out, n := Encode(out, cp)
		require.Equal(t, utf8.RuneLen(cp), n)
		got, width := Decode(out)
		require.Equal(t, cp, got)
		require.Equal(t, n, width)
	}
}

func TestCountBytesForMatchesValidCount(t *testing.T) {
	s := []byte("a日b本c")
	total, ok := ValidCount(s)
	require.True(t, ok)
	require.Equal(t, 5, total)
	require.Equal(t, len(s), CountBytesFor(s, total))
	require.Equal(t, 1, CountBytesFor(s, 1))
}
