package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXXH64Deterministic(t *testing.T) {
	require.Equal(t, XXH64([]byte("hello"), 0), XXH64([]byte("hello"), 0))
	require.NotEqual(t, XXH64([]byte("hello"), 0), XXH64([]byte("hello"), 1))
	require.NotEqual(t, XXH64([]byte("hello"), 0), XXH64([]byte("world"), 0))
}

func TestXXH3Variants(t *testing.T) {
	require.Equal(t, XXH3_64([]byte("hello"), 5), XXH3_64([]byte("hello"), 5))
	hi1, lo1 := XXH3_128([]byte("hello"), 5)
	hi2, lo2 := XXH3_128([]byte("hello"), 5)
	require.Equal(t, hi1, hi2)
	require.Equal(t, lo1, lo2)
}

func TestDJB2LowerCaseInsensitive(t *testing.T) {
	require.Equal(t, DJB2Lower([]byte("Hello")), DJB2Lower([]byte("hello")))
	require.Equal(t, DJB2Lower([]byte("HELLO")), DJB2Lower([]byte("hello")))
	require.NotEqual(t, DJB2Lower([]byte("hello")), DJB2Lower([]byte("world")))
}
