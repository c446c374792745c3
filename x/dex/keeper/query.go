package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// PoolView returns a pool with its custodian and claim issuance
func (k Keeper) PoolView(ctx context.Context, a, b uint32) (types.PoolView, error) {
	pair, err := types.NewAssetPair(a, b)
	if err != nil {
		return types.PoolView{}, err
	}
	pool, err := k.GetPool(ctx, pair)
	if err != nil {
		return types.PoolView{}, err
	}
	return k.view(ctx, pair, pool), nil
}

// PoolViews returns every pool in pair order
func (k Keeper) PoolViews(ctx context.Context) []types.PoolView {
	views := []types.PoolView{}
	k.IteratePools(ctx, func(pair types.AssetPair, pool types.PoolInfo) bool {
		views = append(views, k.view(ctx, pair, pool))
		return false
	})
	return views
}

func (k Keeper) view(ctx context.Context, pair types.AssetPair, pool types.PoolInfo) types.PoolView {
	return types.PoolView{
		Pair:          pair,
		ClaimAsset:    pool.ClaimAsset,
		ReserveFirst:  pool.ReserveFirst,
		ReserveSecond: pool.ReserveSecond,
		Custodian:     k.PoolAccount(pair).String(),
		Issuance:      k.assetsKeeper.TotalIssuance(ctx, pool.ClaimAsset),
	}
}

// Balance returns how much of an asset the owner can move out.
func (k Keeper) Balance(ctx context.Context, owner sdk.AccAddress, asset uint32) math.Int {
	return k.assetsKeeper.ReducibleBalance(ctx, asset, owner, assetstypes.Expendable)
}
