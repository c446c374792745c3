package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestDefaultGenesis_Valid(t *testing.T) {
	gs := DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Equal(t, uint32(3), gs.Params.FeePercent)
	require.Equal(t, math.NewInt(10), gs.Params.MinLiquidity)
}

func TestGenesisState_Validate(t *testing.T) {
	pool := func(claim uint32) PoolInfo {
		return PoolInfo{ClaimAsset: claim, ReserveFirst: math.NewInt(10), ReserveSecond: math.NewInt(20)}
	}

	tests := []struct {
		name    string
		mutate  func(gs *GenesisState)
		wantErr bool
	}{
		{"two pools", func(gs *GenesisState) {
			gs.Pools = []PoolRecord{
				{Pair: AssetPair{First: 1, Second: 2}, Pool: pool(100)},
				{Pair: AssetPair{First: 1, Second: 3}, Pool: pool(101)},
			}
		}, false},
		{"fee of 100 percent", func(gs *GenesisState) { gs.Params.FeePercent = 100 }, true},
		{"zero claim min balance", func(gs *GenesisState) { gs.Params.ClaimAssetMinBalance = math.ZeroInt() }, true},
		{"non-canonical pair", func(gs *GenesisState) {
			gs.Pools = []PoolRecord{{Pair: AssetPair{First: 2, Second: 1}, Pool: pool(100)}}
		}, true},
		{"duplicate pair", func(gs *GenesisState) {
			gs.Pools = []PoolRecord{
				{Pair: AssetPair{First: 1, Second: 2}, Pool: pool(100)},
				{Pair: AssetPair{First: 1, Second: 2}, Pool: pool(101)},
			}
		}, true},
		{"shared claim asset", func(gs *GenesisState) {
			gs.Pools = []PoolRecord{
				{Pair: AssetPair{First: 1, Second: 2}, Pool: pool(100)},
				{Pair: AssetPair{First: 1, Second: 3}, Pool: pool(100)},
			}
		}, true},
		{"claim asset is a member", func(gs *GenesisState) {
			gs.Pools = []PoolRecord{{Pair: AssetPair{First: 1, Second: 2}, Pool: pool(2)}}
		}, true},
		{"negative reserve", func(gs *GenesisState) {
			p := pool(100)
			p.ReserveFirst = math.NewInt(-1)
			gs.Pools = []PoolRecord{{Pair: AssetPair{First: 1, Second: 2}, Pool: p}}
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := DefaultGenesis()
			tc.mutate(gs)
			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestErrors_DistinctCodes(t *testing.T) {
	errs := []error{
		ErrIdenticalAssets, ErrInvalidAmount, ErrInvalidDesiredAmount, ErrInvalidLiquidityAmount,
		ErrPoolNotFound, ErrAssetNotExists, ErrLiquidityPoolTokenNotExists, ErrAssetIdAlreadyTaken,
		ErrPoolExists, ErrInsufficientAmount, ErrInsufficientLiquidity, ErrAmountLessThanMinimal,
		ErrProvidedMinimumNotSufficientForSwap, ErrProvidedMaximumNotSufficientForSwap,
		ErrReserveIsZero, ErrOverflow, ErrAssetNotInPair, ErrInvalidAddress, ErrInvalidParams,
	}

	seen := make(map[string]bool, len(errs))
	for _, err := range errs {
		require.NotEmpty(t, err.Error())
		require.False(t, seen[err.Error()], "duplicate message %q", err.Error())
		seen[err.Error()] = true
	}

	wrapped := ErrPoolNotFound.Wrapf("pair %s", AssetPair{First: 1, Second: 2})
	require.ErrorIs(t, wrapped, ErrPoolNotFound)
	require.Contains(t, wrapped.Error(), "1/2")
}
