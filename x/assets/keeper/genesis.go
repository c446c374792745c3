package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// InitGenesis initializes the ledger from genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid assets genesis: %w", err)
	}

	for _, asset := range genState.Assets {
		k.SetAsset(ctx, asset)
	}
	for _, bal := range genState.Balances {
		k.setBalance(ctx, bal.AssetId, bal.Address, bal.Amount)
	}
	return nil
}

// ExportGenesis exports the ledger state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Assets = k.GetAllAssets(ctx)
	for _, asset := range genesis.Assets {
		k.IterateBalances(ctx, asset.Id, func(addr sdk.AccAddress, amount math.Int) bool {
			genesis.Balances = append(genesis.Balances, types.Balance{
				AssetId: asset.Id,
				Address: addr,
				Amount:  amount,
			})
			return false
		})
	}
	return genesis
}
