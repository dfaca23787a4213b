package xfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPow10(t *testing.T) {
	require.InDelta(t, 10.0, Pow10(1), 1e-9)
	require.InDelta(t, 100.0, Pow10(2), 1e-9)
	require.InDelta(t, 1e18, Pow10(18), 1e9)
	require.Panics(t, func() { Pow10(0) })
	require.Panics(t, func() { Pow10(342) })
}

func TestHasExtendedPrecision(t *testing.T) {
	require.True(t, HasExtendedPrecision())
}

func TestCmpI64F64Basic(t *testing.T) {
	require.Equal(t, Equal, CmpI64F64(5, 5.0))
	require.Equal(t, Less, CmpI64F64(5, 5.5))
	require.Equal(t, Greater, CmpI64F64(5, 4.5))
	require.Equal(t, Less, CmpI64F64(-5, -4.5))
}

func TestCmpI64F64NaNAndInf(t *testing.T) {
	require.Equal(t, Less, CmpI64F64(math.MaxInt64, math.NaN()))
	require.Equal(t, Less, CmpI64F64(math.MaxInt64, math.Inf(1)))
	require.Equal(t, Greater, CmpI64F64(math.MinInt64, math.Inf(-1)))
}

func TestCmpI64F64OutsideDoubleExactRange(t *testing.T) {
	// 2^62 doesn't fit exactly in a double's 53-bit mantissa.
	i := int64(1) << 62
	require.Equal(t, Equal, CmpI64F64(i, float64(i)))
	require.Equal(t, Less, CmpI64F64(i-1, float64(i)))
	require.Equal(t, Greater, CmpI64F64(i+1000, float64(i)))
}

func TestCmpU64F64Basic(t *testing.T) {
	require.Equal(t, Equal, CmpU64F64(5, 5.0))
	require.Equal(t, Less, CmpU64F64(5, 5.5))
	require.Equal(t, Greater, CmpU64F64(0, -1.0))
}

func TestCmpU64F64NaNAndInf(t *testing.T) {
	require.Equal(t, Less, CmpU64F64(math.MaxUint64, math.NaN()))
	require.Equal(t, Less, CmpU64F64(math.MaxUint64, math.Inf(1)))
	require.Equal(t, Greater, CmpU64F64(0, math.Inf(-1)))
}

func TestCmpU64F64LargeMagnitude(t *testing.T) {
	u := uint64(1) << 62
	require.Equal(t, Equal, CmpU64F64(u, float64(u)))
	require.Equal(t, Less, CmpU64F64(u-1, float64(u)))
}
