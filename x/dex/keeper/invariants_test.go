package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestInvariants_HoldAfterOperations(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	provider := seedPool(t, k, ak, ctx, assetA, assetB, claimAsset, 50_000, 80_000)
	trader := newTrader(t, ak, ctx, assetA, 10_000)

	_, err := k.SwapExactIn(ctx, trader, assetA, assetB, math.NewInt(5000), math.OneInt())
	require.NoError(t, err)
	_, err = k.SwapExactOut(ctx, trader, assetB, assetA, math.NewInt(1000), math.NewInt(10_000))
	require.NoError(t, err)
	_, err = k.RemoveLiquidity(ctx, provider, assetA, assetB, math.NewInt(20_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	requireInvariants(t, k, ctx)
}

func TestReserveBackingInvariant_Broken(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	seedPool(t, k, ak, ctx, assetA, assetB, claimAsset, 1000, 1000)

	pair, err := types.NewAssetPair(assetA, assetB)
	require.NoError(t, err)
	pool, err := k.GetPool(ctx, pair)
	require.NoError(t, err)
	pool.ReserveFirst = pool.ReserveFirst.AddRaw(1)
	k.SetPool(ctx, pair, pool)

	msg, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "reserve-backing")

	_, broken = keeper.AllInvariants(k)(ctx)
	require.True(t, broken)
}

// Value sent straight to a custodian is a donation, not a violation.
func TestReserveBackingInvariant_Donation(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	seedPool(t, k, ak, ctx, assetA, assetB, claimAsset, 1000, 1000)

	pair, err := types.NewAssetPair(assetA, assetB)
	require.NoError(t, err)
	keepertest.Fund(t, ak, ctx, assetA, k.PoolAccount(pair), 500)

	_, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.False(t, broken)
}

func TestLockedLiquidityInvariant_Broken(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	seedPool(t, k, ak, ctx, assetA, assetB, claimAsset, 1000, 1000)

	// a pool pointing at a claim asset that was never created
	pair, err := types.NewAssetPair(assetA, 3)
	require.NoError(t, err)
	k.SetPool(ctx, pair, types.NewPoolInfo(999))

	msg, broken := keeper.LockedLiquidityInvariant(k)(ctx)
	require.True(t, broken)
	require.Contains(t, msg, "claim asset 999 missing")
}
