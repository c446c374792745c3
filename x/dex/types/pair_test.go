package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewAssetPair_Canonical(t *testing.T) {
	p1, err := NewAssetPair(7, 3)
	require.NoError(t, err)
	p2, err := NewAssetPair(3, 7)
	require.NoError(t, err)

	require.Equal(t, p1, p2)
	require.Equal(t, uint32(3), p1.First)
	require.Equal(t, uint32(7), p1.Second)
	require.Equal(t, "3/7", p1.String())
}

func TestNewAssetPair_Identical(t *testing.T) {
	_, err := NewAssetPair(5, 5)
	require.ErrorIs(t, err, ErrIdenticalAssets)
}

// Store iteration relies on key byte order matching pair order.
func TestAssetPair_KeyRoundTripAndOrder(t *testing.T) {
	pairs := []AssetPair{
		{First: 0, Second: 1},
		{First: 0, Second: 256},
		{First: 1, Second: 2},
		{First: 255, Second: 256},
		{First: 65536, Second: 4294967295},
	}

	for i, p := range pairs {
		decoded, err := PairFromKey(p.Key())
		require.NoError(t, err)
		require.Equal(t, p, decoded)
		require.Len(t, p.Key(), 8)

		if i > 0 {
			prev := pairs[i-1]
			require.Equal(t, -1, prev.Compare(p))
			require.Equal(t, 1, p.Compare(prev))
			require.Equal(t, -1, bytes.Compare(prev.Key(), p.Key()))
		}
		require.Equal(t, 0, p.Compare(p))
	}
}

func TestPairFromKey_Invalid(t *testing.T) {
	_, err := PairFromKey([]byte{0, 1})
	require.Error(t, err)

	// identical members never form a pair
	_, err = PairFromKey(AssetPair{First: 4, Second: 4}.Key())
	require.ErrorIs(t, err, ErrIdenticalAssets)
}

func TestAssetPair_Orient(t *testing.T) {
	pair, err := NewAssetPair(9, 2)
	require.NoError(t, err)

	inIsFirst, err := pair.Orient(2)
	require.NoError(t, err)
	require.True(t, inIsFirst)

	inIsFirst, err = pair.Orient(9)
	require.NoError(t, err)
	require.False(t, inIsFirst)

	_, err = pair.Orient(3)
	require.ErrorIs(t, err, ErrAssetNotInPair)

	require.True(t, pair.Contains(9))
	require.False(t, pair.Contains(10))
}

func TestNewAssetPair_Symmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Uint32().Draw(rt, "a")
		b := rapid.Uint32().Draw(rt, "b")

		p1, err1 := NewAssetPair(a, b)
		p2, err2 := NewAssetPair(b, a)
		if a == b {
			require.ErrorIs(rt, err1, ErrIdenticalAssets)
			require.ErrorIs(rt, err2, ErrIdenticalAssets)
			return
		}
		require.NoError(rt, err1)
		require.NoError(rt, err2)
		require.Equal(rt, p1, p2)
		require.Less(rt, p1.First, p1.Second)
	})
}
