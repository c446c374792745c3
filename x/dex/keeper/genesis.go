package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// InitGenesis initializes the dex module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis: %w", err)
	}

	// Set parameters
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	// Initialize pools
	for _, rec := range genState.Pools {
		if !k.assetsKeeper.AssetExists(ctx, rec.Pool.ClaimAsset) {
			return fmt.Errorf("pool %s: claim asset %d does not exist", rec.Pair, rec.Pool.ClaimAsset)
		}
		k.SetPool(ctx, rec.Pair, rec.Pool)
	}

	return nil
}

// ExportGenesis exports the dex module's state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params: k.GetParams(ctx),
		Pools:  k.GetAllPools(ctx),
	}
}
