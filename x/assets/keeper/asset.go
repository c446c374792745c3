package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// GetAsset returns an asset's metadata
func (k Keeper) GetAsset(ctx context.Context, id uint32) (types.Asset, bool) {
	bz := k.getStore(ctx).Get(types.AssetKey(id))
	if bz == nil {
		return types.Asset{}, false
	}

	var asset types.Asset
	k.cdc.MustUnmarshalJSON(bz, &asset)
	return asset, true
}

// SetAsset stores an asset's metadata
func (k Keeper) SetAsset(ctx context.Context, asset types.Asset) {
	k.getStore(ctx).Set(types.AssetKey(asset.Id), k.cdc.MustMarshalJSON(asset))
}

// AssetExists reports whether an asset id is in use
func (k Keeper) AssetExists(ctx context.Context, id uint32) bool {
	return k.getStore(ctx).Has(types.AssetKey(id))
}

// Create originates a new asset with zero supply.
func (k Keeper) Create(ctx context.Context, id uint32, owner sdk.AccAddress, isSufficient bool, minBalance math.Int) error {
	if k.AssetExists(ctx, id) {
		return types.ErrAssetExists.Wrapf("asset %d", id)
	}

	asset := types.NewAsset(id, owner, isSufficient, minBalance)
	if err := asset.Validate(); err != nil {
		return err
	}

	k.SetAsset(ctx, asset)
	k.Logger(ctx).Info("asset created", "asset", id, "owner", owner.String(), "min_balance", minBalance.String())
	return nil
}

// TotalIssuance returns the supply of an asset, zero if it does not exist
func (k Keeper) TotalIssuance(ctx context.Context, id uint32) math.Int {
	asset, found := k.GetAsset(ctx, id)
	if !found {
		return math.ZeroInt()
	}
	return asset.Supply
}

// MinimumBalance returns an asset's minimum balance, zero if it does not exist
func (k Keeper) MinimumBalance(ctx context.Context, id uint32) math.Int {
	asset, found := k.GetAsset(ctx, id)
	if !found {
		return math.ZeroInt()
	}
	return asset.MinBalance
}

// IterateAssets walks all assets in id order until cb returns true
func (k Keeper) IterateAssets(ctx context.Context, cb func(asset types.Asset) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.AssetKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var asset types.Asset
		k.cdc.MustUnmarshalJSON(iterator.Value(), &asset)
		if cb(asset) {
			break
		}
	}
}

// GetAllAssets returns every asset in id order
func (k Keeper) GetAllAssets(ctx context.Context) []types.Asset {
	assets := []types.Asset{}
	k.IterateAssets(ctx, func(asset types.Asset) bool {
		assets = append(assets, asset)
		return false
	})
	return assets
}

func (k Keeper) mustGetAsset(ctx context.Context, id uint32) (types.Asset, error) {
	asset, found := k.GetAsset(ctx, id)
	if !found {
		return types.Asset{}, types.ErrAssetNotFound.Wrapf("asset %d", id)
	}
	return asset, nil
}
