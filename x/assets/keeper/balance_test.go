package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/assets/keeper"
	"github.com/paw-chain/pawdex/x/assets/types"
)

const testAsset uint32 = 7

func setupAsset(t *testing.T, minBalance int64) (keeper.Keeper, sdk.Context) {
	t.Helper()
	k, ctx := keepertest.AssetsKeeper(t)
	require.NoError(t, k.Create(ctx, testAsset, keepertest.TestAddr("owner"), true, math.NewInt(minBalance)))
	return k, ctx
}

func requireSupplyInvariant(t *testing.T, k keeper.Keeper, ctx sdk.Context) {
	t.Helper()
	msg, broken := keeper.SupplyInvariant(k)(ctx)
	require.False(t, broken, msg)
}

func TestCreate(t *testing.T) {
	k, ctx := setupAsset(t, 10)

	asset, found := k.GetAsset(ctx, testAsset)
	require.True(t, found)
	require.True(t, asset.Supply.IsZero())
	require.Equal(t, "10", k.MinimumBalance(ctx, testAsset).String())

	err := k.Create(ctx, testAsset, keepertest.TestAddr("owner"), true, math.OneInt())
	require.ErrorIs(t, err, types.ErrAssetExists)

	err = k.Create(ctx, 8, keepertest.TestAddr("owner"), true, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidMinBalance)
	require.False(t, k.AssetExists(ctx, 8))

	require.True(t, k.TotalIssuance(ctx, 99).IsZero())
}

func TestMintInto(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")

	require.ErrorIs(t, k.MintInto(ctx, testAsset, alice, math.NewInt(5)), types.ErrBelowMinimum)
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(50)))
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(5)))
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.ZeroInt()))

	require.Equal(t, "55", k.Balance(ctx, testAsset, alice).String())
	require.Equal(t, "55", k.TotalIssuance(ctx, testAsset).String())

	err := k.MintInto(ctx, testAsset, alice, types.MaxBalance)
	require.ErrorIs(t, err, types.ErrOverflow)

	require.ErrorIs(t, k.MintInto(ctx, 99, alice, math.OneInt()), types.ErrAssetNotFound)
	requireSupplyInvariant(t, k, ctx)
}

func TestBurnFrom_Policies(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(100)))

	_, err := k.BurnFrom(ctx, testAsset, alice, math.NewInt(101), types.Exact, types.Polite)
	require.ErrorIs(t, err, types.ErrFundsUnavailable)

	// leaving 5 would be dust below the minimum of 10
	_, err = k.BurnFrom(ctx, testAsset, alice, math.NewInt(95), types.Exact, types.Polite)
	require.ErrorIs(t, err, types.ErrBelowMinimum)

	burned, err := k.BurnFrom(ctx, testAsset, alice, math.NewInt(50), types.Exact, types.Polite)
	require.NoError(t, err)
	require.Equal(t, "50", burned.String())

	// force reaps the dust along with the requested amount
	burned, err = k.BurnFrom(ctx, testAsset, alice, math.NewInt(45), types.Exact, types.Force)
	require.NoError(t, err)
	require.Equal(t, "50", burned.String())
	require.True(t, k.Balance(ctx, testAsset, alice).IsZero())
	require.True(t, k.TotalIssuance(ctx, testAsset).IsZero())

	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(30)))
	burned, err = k.BurnFrom(ctx, testAsset, alice, math.NewInt(1000), types.BestEffort, types.Polite)
	require.NoError(t, err)
	require.Equal(t, "30", burned.String())

	requireSupplyInvariant(t, k, ctx)
}

func TestTransfer_Preservation(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(100)))

	tests := []struct {
		name         string
		amount       int64
		preservation types.Preservation
		wantErr      error
	}{
		{"more than held", 101, types.Preserve, types.ErrFundsUnavailable},
		{"preserve would reap", 95, types.Preserve, types.ErrNotExpendable},
		{"recipient below minimum", 5, types.Preserve, types.ErrBelowMinimum},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.Transfer(ctx, testAsset, alice, bob, math.NewInt(tc.amount), tc.preservation)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
	require.Equal(t, "100", k.Balance(ctx, testAsset, alice).String())

	require.NoError(t, k.Transfer(ctx, testAsset, alice, bob, math.NewInt(40), types.Preserve))
	require.Equal(t, "60", k.Balance(ctx, testAsset, alice).String())
	require.Equal(t, "40", k.Balance(ctx, testAsset, bob).String())

	// expendable burns the remaining dust and empties the sender
	require.NoError(t, k.Transfer(ctx, testAsset, alice, bob, math.NewInt(55), types.Expendable))
	require.True(t, k.Balance(ctx, testAsset, alice).IsZero())
	require.Equal(t, "95", k.Balance(ctx, testAsset, bob).String())
	require.Equal(t, "95", k.TotalIssuance(ctx, testAsset).String())

	// zero amounts and self transfers are no-ops
	require.NoError(t, k.Transfer(ctx, testAsset, bob, bob, math.NewInt(95), types.Preserve))
	require.NoError(t, k.Transfer(ctx, testAsset, bob, alice, math.ZeroInt(), types.Preserve))
	require.Equal(t, "95", k.Balance(ctx, testAsset, bob).String())

	requireSupplyInvariant(t, k, ctx)
}

// A failed expendable transfer must not burn the dust it would have reaped.
func TestTransfer_ExpendableRecipientFailureBurnsNothing(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(12)))

	err := k.Transfer(ctx, testAsset, alice, bob, math.NewInt(5), types.Expendable)
	require.ErrorIs(t, err, types.ErrBelowMinimum)
	require.Equal(t, "12", k.Balance(ctx, testAsset, alice).String())
	require.Equal(t, "12", k.TotalIssuance(ctx, testAsset).String())
}

func TestReducibleBalance(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(100)))

	require.Equal(t, "100", k.ReducibleBalance(ctx, testAsset, alice, types.Expendable).String())
	require.Equal(t, "90", k.ReducibleBalance(ctx, testAsset, alice, types.Preserve).String())
	require.True(t, k.ReducibleBalance(ctx, testAsset, keepertest.TestAddr("nobody"), types.Preserve).IsZero())
}

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	require.NoError(t, k.MintInto(ctx, testAsset, alice, math.NewInt(100)))
	require.NoError(t, k.MintInto(ctx, testAsset, bob, math.NewInt(25)))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Assets, 1)
	require.Len(t, exported.Balances, 2)

	k2, ctx2 := keepertest.AssetsKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))
	require.Equal(t, "100", k2.Balance(ctx2, testAsset, alice).String())
	require.Equal(t, "125", k2.TotalIssuance(ctx2, testAsset).String())

	exported.Assets[0].Supply = math.NewInt(1)
	require.Error(t, exported.Validate())
}

func TestIssue_OwnerOnly(t *testing.T) {
	k, ctx := setupAsset(t, 10)
	alice := keepertest.TestAddr("alice")

	err := k.Issue(ctx, testAsset, alice, alice, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNotOwner)
	require.True(t, k.TotalIssuance(ctx, testAsset).IsZero())

	require.NoError(t, k.Issue(ctx, testAsset, keepertest.TestAddr("owner"), alice, math.NewInt(100)))
	require.Equal(t, "100", k.Balance(ctx, testAsset, alice).String())

	require.ErrorIs(t, k.Issue(ctx, 99, alice, alice, math.OneInt()), types.ErrAssetNotFound)
}
