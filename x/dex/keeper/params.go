package keeper

import (
	"context"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// GetParams returns the module parameters, falling back to defaults before genesis.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, k.cdc.MustMarshalJSON(params))
	return nil
}
