package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// execute runs fn on a cached branch of ctx while holding the pair's lock.
// The branch is written back, and the returned event emitted on ctx, only
// when fn succeeds; on error nothing fn did is visible.
func (k Keeper) execute(ctx context.Context, pair types.AssetPair, fn func(cacheCtx sdk.Context) (sdk.Event, error)) error {
	unlock := k.locks.lock(pair)
	defer unlock()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	event, err := fn(cacheCtx)
	if err != nil {
		return err
	}

	write()
	sdkCtx.EventManager().EmitEvent(event)

	if k.metrics != nil {
		if pool, err := k.GetPool(ctx, pair); err == nil {
			k.metrics.observeReserves(pair, pool)
		}
	}
	return nil
}
