package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex/keeper"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// NativeAsset is the fee asset created by DexKeeper.
const NativeAsset uint32 = 0

// DexKeeper creates a DEX keeper backed by a real asset ledger on an in-memory store.
// The native fee asset exists with a minimum balance of 1.
func DexKeeper(t testing.TB) (keeper.Keeper, assetskeeper.Keeper, sdk.Context) {
	return DexKeeperWithParams(t, types.DefaultParams())
}

// DexKeeperWithParams is DexKeeper with custom genesis params
func DexKeeperWithParams(t testing.TB, params types.Params) (keeper.Keeper, assetskeeper.Keeper, sdk.Context) {
	dexKey := storetypes.NewKVStoreKey(types.StoreKey)
	assetsKey := storetypes.NewKVStoreKey(assetstypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(dexKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(assetsKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ak := assetskeeper.NewKeeper(assetstypes.ModuleCdc, assetsKey)
	k := keeper.NewKeeper(types.ModuleCdc, dexKey, ak)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	genesis := types.DefaultGenesis()
	genesis.Params = params
	require.NoError(t, k.InitGenesis(ctx, *genesis))
	require.NoError(t, ak.Create(ctx, NativeAsset, k.GetModuleAddress(), true, math.OneInt()))

	return *k, ak, ctx
}

// CreateAsset creates an asset with the given minimum balance
func CreateAsset(t testing.TB, ak assetskeeper.Keeper, ctx sdk.Context, id uint32, minBalance int64) {
	require.NoError(t, ak.Create(ctx, id, TestAddr("asset-owner"), true, math.NewInt(minBalance)))
}

// Fund mints amount of asset id to addr
func Fund(t testing.TB, ak assetskeeper.Keeper, ctx sdk.Context, id uint32, addr sdk.AccAddress, amount int64) {
	require.NoError(t, ak.MintInto(ctx, id, addr, math.NewInt(amount)))
}

// CreateTestPool creates assets a, b (min balance 1), funds creator with the
// creation fee and registers the pool with the given claim asset.
func CreateTestPool(t testing.TB, k keeper.Keeper, ak assetskeeper.Keeper, ctx sdk.Context, a, b, claim uint32) types.AssetPair {
	creator := TestAddr("pool-creator")
	for _, id := range []uint32{a, b} {
		if !ak.AssetExists(ctx, id) {
			CreateAsset(t, ak, ctx, id, 1)
		}
	}
	fee := k.GetParams(ctx).PoolCreationFee
	require.NoError(t, ak.MintInto(ctx, NativeAsset, creator, fee.AddRaw(1)))

	pair, err := k.CreatePool(ctx, creator, a, b, claim)
	require.NoError(t, err)
	return pair
}
