package dks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackHeaderRoundTrip(t *testing.T) {
	for c := W8; c <= W48; c++ {
		buf := make([]byte, c.HeaderBytes())
		PackHeader(c, 42, buf)
		length, err := UnpackHeader(c, buf)
		require.NoError(t, err)
		require.Equal(t, uint64(42), length)
	}
}

func TestUnpackHeaderRejectsWrongTag(t *testing.T) {
	buf := make([]byte, W16.HeaderBytes())
	PackHeader(W16, 1, buf)
	_, err := UnpackHeader(W8, buf)
	require.ErrorIs(t, err, ErrUnknownClass)
}

func TestDetectClassRoundTrip(t *testing.T) {
	for c := W8; c <= W48; c++ {
		buf := make([]byte, c.HeaderBytes())
		PackHeader(c, 7, buf)
		got, err := DetectClass(buf)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestMaxLengthMonotonic(t *testing.T) {
	prev := uint64(0)
	for c := W8; c <= W48; c++ {
		require.Greater(t, c.MaxLength(), prev)
		prev = c.MaxLength()
	}
}

func TestChooseClassPicksSmallestFit(t *testing.T) {
	c, err := ChooseClass(0, 0)
	require.NoError(t, err)
	require.Equal(t, W8, c)

	c, err = ChooseClass(W8.MaxLength()+1, 0)
	require.NoError(t, err)
	require.NotEqual(t, W8, c)
}

func TestChooseClassWithFreeRequiresFullClass(t *testing.T) {
	c, err := ChooseClass(10, 5)
	require.NoError(t, err)
	require.False(t, c.compact())
}

func TestChooseClassTooLarge(t *testing.T) {
	_, err := ChooseClass(1<<62, 0)
	require.ErrorIs(t, err, ErrSizeTooLarge)
}
