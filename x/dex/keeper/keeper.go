package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// Keeper of the dex store
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          *codec.LegacyAmino
	assetsKeeper types.AssetsKeeper
	metrics      *DEXMetrics
	locks        *pairLocks
}

// NewKeeper creates a new dex Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	assetsKeeper types.AssetsKeeper,
) *Keeper {
	return &Keeper{
		storeKey:     key,
		cdc:          cdc,
		assetsKeeper: assetsKeeper,
		metrics:      NewDEXMetrics(),
		locks:        newPairLocks(),
	}
}

// getStore returns the KVStore for the dex module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the account that collects pool creation fees.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(types.ModuleName))
}

// PoolAccount returns the custodian account holding a pair's reserves.
func (k Keeper) PoolAccount(pair types.AssetPair) sdk.AccAddress {
	return sdk.AccAddress(address.Module(types.ModuleName, pair.Key()))
}
