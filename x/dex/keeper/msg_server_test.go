package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func TestMsgServer_Lifecycle(t *testing.T) {
	k, ak, ctx := keepertest.DexKeeper(t)
	ms := keeper.NewMsgServerImpl(k)

	keepertest.CreateAsset(t, ak, ctx, assetA, 1)
	keepertest.CreateAsset(t, ak, ctx, assetB, 1)

	alice := keepertest.TestAddr("alice")
	keepertest.Fund(t, ak, ctx, keepertest.NativeAsset, alice, 1000)
	keepertest.Fund(t, ak, ctx, assetA, alice, 100_000)
	keepertest.Fund(t, ak, ctx, assetB, alice, 100_000)

	created, err := ms.CreatePool(ctx, types.NewMsgCreatePool(alice.String(), assetB, assetA, claimAsset))
	require.NoError(t, err)
	require.Equal(t, types.AssetPair{First: assetA, Second: assetB}, created.Pair)

	added, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(alice.String(), assetA, assetB,
		math.NewInt(40_000), math.NewInt(40_000), math.ZeroInt(), math.ZeroInt(), alice.String()))
	require.NoError(t, err)
	requireAmount(t, 39_990, added.Minted)

	swapped, err := ms.SwapExactIn(ctx, types.NewMsgSwapExactIn(alice.String(), assetA, assetB, math.NewInt(1000), math.OneInt()))
	require.NoError(t, err)
	require.True(t, swapped.AmountOut.IsPositive())

	bought, err := ms.SwapExactOut(ctx, types.NewMsgSwapExactOut(alice.String(), assetB, assetA, math.NewInt(500), math.NewInt(1000)))
	require.NoError(t, err)
	requireAmount(t, 500, bought.AmountOut)

	removed, err := ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(alice.String(), assetA, assetB,
		math.NewInt(10_000), math.ZeroInt(), math.ZeroInt()))
	require.NoError(t, err)
	requireAmount(t, 300, removed.Fee)

	requireInvariants(t, k, ctx)
}

func TestMsgServer_ValidationErrors(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)
	ms := keeper.NewMsgServerImpl(k)
	alice := keepertest.TestAddr("alice").String()

	_, err := ms.CreatePool(ctx, types.NewMsgCreatePool("not-an-address", 1, 2, 100))
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = ms.SwapExactIn(ctx, types.NewMsgSwapExactIn(alice, 1, 1, math.OneInt(), math.OneInt()))
	require.ErrorIs(t, err, types.ErrIdenticalAssets)

	_, err = ms.SwapExactOut(ctx, types.NewMsgSwapExactOut(alice, 1, 2, math.OneInt(), math.OneInt()))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
	require.Contains(t, err.Error(), "SwapExactOut")
}
