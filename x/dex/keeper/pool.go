package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// MaxIterationLimit caps how many pools a single listing walks.
const MaxIterationLimit = 10000

// HasPool reports whether the pair has a pool
func (k Keeper) HasPool(ctx context.Context, pair types.AssetPair) bool {
	return k.getStore(ctx).Has(types.PoolKey(pair))
}

// GetPool returns the authoritative pool entry for a pair.
func (k Keeper) GetPool(ctx context.Context, pair types.AssetPair) (types.PoolInfo, error) {
	bz := k.getStore(ctx).Get(types.PoolKey(pair))
	if bz == nil {
		return types.PoolInfo{}, types.ErrPoolNotFound.Wrapf("pair %s", pair)
	}

	var pool types.PoolInfo
	k.cdc.MustUnmarshalJSON(bz, &pool)
	return pool, nil
}

// SetPool overwrites a pair's pool entry. Engines commit through it.
func (k Keeper) SetPool(ctx context.Context, pair types.AssetPair, pool types.PoolInfo) {
	k.getStore(ctx).Set(types.PoolKey(pair), k.cdc.MustMarshalJSON(pool))
}

// createPoolEntry inserts a zero-reserve pool, failing if the pair already has one.
func (k Keeper) createPoolEntry(ctx context.Context, pair types.AssetPair, claimAsset uint32) (types.PoolInfo, error) {
	if k.HasPool(ctx, pair) {
		return types.PoolInfo{}, types.ErrPoolExists.Wrapf("pair %s", pair)
	}

	pool := types.NewPoolInfo(claimAsset)
	k.SetPool(ctx, pair, pool)
	return pool, nil
}

// IteratePools walks pools in pair order until cb returns true
func (k Keeper) IteratePools(ctx context.Context, cb func(pair types.AssetPair, pool types.PoolInfo) (stop bool)) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKeyPrefix)
	defer iterator.Close()

	count := 0
	for ; iterator.Valid(); iterator.Next() {
		if count >= MaxIterationLimit {
			k.Logger(ctx).Error("pool iteration limit reached", "limit", MaxIterationLimit)
			break
		}
		count++

		pair, err := types.PairFromKey(iterator.Key()[len(types.PoolKeyPrefix):])
		if err != nil {
			panic(err)
		}
		var pool types.PoolInfo
		k.cdc.MustUnmarshalJSON(iterator.Value(), &pool)
		if cb(pair, pool) {
			break
		}
	}
}

// GetAllPools returns every pool in pair order
func (k Keeper) GetAllPools(ctx context.Context) []types.PoolRecord {
	pools := []types.PoolRecord{}
	k.IteratePools(ctx, func(pair types.AssetPair, pool types.PoolInfo) bool {
		pools = append(pools, types.PoolRecord{Pair: pair, Pool: pool})
		return false
	})
	return pools
}

// GetReserves returns the pool's reserves of a and b, in that order.
func (k Keeper) GetReserves(ctx context.Context, a, b uint32) (math.Int, math.Int, error) {
	pair, err := types.NewAssetPair(a, b)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	pool, err := k.GetPool(ctx, pair)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	ra, rb := pool.Reserves(a == pair.First)
	return ra, rb, nil
}
