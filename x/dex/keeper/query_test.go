package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestPoolView(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	provider := seedPool(t, k, ak, ctx, assetA, assetB, claimAsset, 10000, 10)
	keepertest.CreateTestPool(t, k, ak, ctx, 3, assetA, 101)

	view, err := k.PoolView(ctx, assetB, assetA)
	require.NoError(t, err)
	require.Equal(t, types.AssetPair{First: assetA, Second: assetB}, view.Pair)
	require.Equal(t, claimAsset, view.ClaimAsset)
	requireAmount(t, 316, view.Issuance)
	requireAmount(t, 10000, view.ReserveFirst)
	require.Equal(t, k.PoolAccount(view.Pair).String(), view.Custodian)

	_, err = k.PoolView(ctx, assetA, 9)
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	views := k.PoolViews(ctx)
	require.Len(t, views, 2)
	require.Equal(t, types.AssetPair{First: 1, Second: 2}, views[0].Pair)
	require.Equal(t, types.AssetPair{First: 1, Second: 3}, views[1].Pair)
	require.True(t, views[1].Issuance.IsZero())

	requireAmount(t, 306, k.Balance(ctx, provider, claimAsset))
	requireAmount(t, 1, k.Balance(ctx, provider, assetA))
}
