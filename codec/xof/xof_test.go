package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks that decoding an xof stream returns the same
// sequence that was written.
func TestRoundTrip(t *testing.T) {
	values := []float64{42.0, 42.123, 42.123, 43.5, 100.0, -5.5, 0.0, 0.0, 1e100, -1e-100}
	buf := make([]byte, SegmentBytes)
	w := NewWriter(buf)
	for _, v := range values {
		require.NoError(t, w.Write(v))
	}
	r := NewReader(buf, len(values))
	for i, want := range values {
		got, ok := r.Next()
		require.True(t, ok, "index %d", i)
		require.Equal(t, want, got, "index %d", i)
	}
	_, ok := r.Next()
	require.False(t, ok)
}

func TestRoundTripLinearSeries(t *testing.T) {
	buf := make([]byte, SegmentBytes)
	w := NewWriter(buf)
	n := 100
	for i := 0; i < n; i++ {
		require.NoError(t, w.Write(float64(i)*0.123+42.0))
	}
	r := NewReader(buf, n)
	for i := 0; i < n; i++ {
		got, ok := r.Next()
		require.True(t, ok)
		require.Equal(t, float64(i)*0.123+42.0, got)
	}
}

func TestOverflowGuard(t *testing.T) {
	buf := make([]byte, SegmentBytes)
	w := NewWriter(buf)
	v := 1.0
	for !w.WouldOverflow() {
		require.NoError(t, w.Write(v))
		v += 0.7
	}
	require.ErrorIs(t, w.Write(v), ErrOverflow)
	require.Greater(t, w.Count(), 0)
}
