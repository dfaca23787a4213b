package primitives

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint128MulAddCmp(t *testing.T) {
	u := Uint128{Lo: 10}
	u, overflow := u.MulU64(20)
	require.False(t, overflow)
	require.Equal(t, uint64(200), u.Lo)

	u, overflow = u.AddU64(5)
	require.False(t, overflow)
	require.Equal(t, uint64(205), u.Lo)

	require.Equal(t, 0, u.Cmp(Uint128{Lo: 205}))
	require.Equal(t, 1, u.Cmp(Uint128{Lo: 204}))
	require.Equal(t, -1, u.Cmp(Uint128{Lo: 206}))
}

func TestUint128MulOverflow(t *testing.T) {
	max := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	_, overflow := max.MulU64(2)
	require.True(t, overflow)
}

func TestU128ToBufMatchesBigInt(t *testing.T) {
	cases := []Uint128{
		{Lo: 0},
		{Lo: 1},
		{Lo: 18446744073709551615},
		{Hi: 1, Lo: 0},
		{Hi: ^uint64(0), Lo: ^uint64(0)}, // u128::MAX
	}
	for _, u := range cases {
		var buf [40]byte
		n := U128ToBuf(buf[:], u)
		want := new(big.Int).Lsh(new(big.Int).SetUint64(u.Hi), 64)
		want.Add(want, new(big.Int).SetUint64(u.Lo))
		require.Equal(t, want.String(), string(buf[:n]))
	}
}

func TestU128ToBufMax(t *testing.T) {
	var buf [40]byte
	n := U128ToBuf(buf[:], Uint128{Hi: ^uint64(0), Lo: ^uint64(0)})
	require.Equal(t, "340282366920938463463374607431768211455", string(buf[:n]))
}

func TestI128ToBufMin(t *testing.T) {
	// i128::MIN bit pattern: hi = 1<<63, lo = 0.
	var buf [41]byte
	n := I128ToBuf(buf[:], 1<<63, 0)
	require.Equal(t, "-170141183460469231731687303715884105728", string(buf[:n]))
}

func TestI128AbsRoundTrip(t *testing.T) {
	hi, lo := negateI128(0, 12345)
	mag, negative := I128Abs(hi, lo)
	require.True(t, negative)
	require.Equal(t, uint64(12345), mag.Lo)
	require.Equal(t, uint64(0), mag.Hi)
}
