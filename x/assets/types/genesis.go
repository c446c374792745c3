package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the asset ledger's genesis state
type GenesisState struct {
	Assets   []Asset   `json:"assets"`
	Balances []Balance `json:"balances"`
}

// DefaultGenesis returns an empty ledger
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Assets:   []Asset{},
		Balances: []Balance{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	supplies := make(map[uint32]math.Int, len(gs.Assets))
	for _, asset := range gs.Assets {
		if _, dup := supplies[asset.Id]; dup {
			return fmt.Errorf("duplicate asset id %d", asset.Id)
		}
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("invalid asset %d: %w", asset.Id, err)
		}
		supplies[asset.Id] = math.ZeroInt()
	}

	seen := make(map[string]bool, len(gs.Balances))
	minimums := make(map[uint32]math.Int, len(gs.Assets))
	for _, asset := range gs.Assets {
		minimums[asset.Id] = asset.MinBalance
	}
	for _, bal := range gs.Balances {
		sum, ok := supplies[bal.AssetId]
		if !ok {
			return fmt.Errorf("balance %s references unknown asset", bal)
		}
		if bal.Address.Empty() {
			return fmt.Errorf("balance for asset %d has empty address", bal.AssetId)
		}
		key := fmt.Sprintf("%d/%s", bal.AssetId, bal.Address)
		if seen[key] {
			return fmt.Errorf("duplicate balance %s", key)
		}
		seen[key] = true
		if !InRange(bal.Amount) || bal.Amount.LT(minimums[bal.AssetId]) {
			return fmt.Errorf("balance %s is outside [min_balance, max]", bal)
		}
		supplies[bal.AssetId] = sum.Add(bal.Amount)
	}

	for _, asset := range gs.Assets {
		if !supplies[asset.Id].Equal(asset.Supply) {
			return fmt.Errorf("asset %d supply %s does not match balances %s", asset.Id, asset.Supply, supplies[asset.Id])
		}
	}
	return nil
}
