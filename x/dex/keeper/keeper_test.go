package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

const (
	assetA     uint32 = 1
	assetB     uint32 = 2
	claimAsset uint32 = 100
)

// seedPool creates the (a, b) pool and has a fresh provider make the first
// deposit. The provider keeps one unit of each asset.
func seedPool(t *testing.T, k keeper.Keeper, ak assetskeeper.Keeper, ctx sdk.Context, a, b, claim uint32, amountA, amountB int64) sdk.AccAddress {
	t.Helper()
	keepertest.CreateTestPool(t, k, ak, ctx, a, b, claim)

	provider := keepertest.TestAddr("provider")
	keepertest.Fund(t, ak, ctx, a, provider, amountA+1)
	keepertest.Fund(t, ak, ctx, b, provider, amountB+1)

	_, err := k.AddLiquidity(ctx, provider, a, b, math.NewInt(amountA), math.NewInt(amountB), math.ZeroInt(), math.ZeroInt(), provider)
	require.NoError(t, err)
	return provider
}

func newTrader(t *testing.T, ak assetskeeper.Keeper, ctx sdk.Context, asset uint32, amount int64) sdk.AccAddress {
	t.Helper()
	trader := keepertest.TestAddr("trader")
	keepertest.Fund(t, ak, ctx, asset, trader, amount)
	return trader
}

func requireInvariants(t *testing.T, k keeper.Keeper, ctx sdk.Context) {
	t.Helper()
	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

// requireAmount compares by value; stored ints may differ in internal representation.
func requireAmount(t *testing.T, want int64, got math.Int) {
	t.Helper()
	require.True(t, got.Equal(math.NewInt(want)), "want %d, got %s", want, got)
}

func TestKeeper_PoolAccountIsPerPair(t *testing.T) {
	k, _, _ := keepertest.DexKeeper(t)

	p12, err := types.NewAssetPair(1, 2)
	require.NoError(t, err)
	p13, err := types.NewAssetPair(1, 3)
	require.NoError(t, err)

	require.Equal(t, k.PoolAccount(p12), k.PoolAccount(p12))
	require.NotEqual(t, k.PoolAccount(p12), k.PoolAccount(p13))
	require.NotEqual(t, k.GetModuleAddress(), k.PoolAccount(p12))
}

func TestParams_DefaultsAndValidation(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)

	params := k.GetParams(ctx)
	require.Equal(t, types.DefaultFeePercent, params.FeePercent)
	requireAmount(t, 10, params.MinLiquidity)
	requireAmount(t, 100, params.PoolCreationFee)

	params.FeePercent = 1
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, uint32(1), k.GetParams(ctx).FeePercent)

	params.FeePercent = 100
	require.ErrorIs(t, k.SetParams(ctx, params), types.ErrInvalidParams)
	require.Equal(t, uint32(1), k.GetParams(ctx).FeePercent)
}
