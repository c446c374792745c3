package types

import (
	"fmt"
)

// PoolRecord is a pool with its pair, as exported in genesis.
type PoolRecord struct {
	Pair AssetPair `json:"pair"`
	Pool PoolInfo  `json:"pool"`
}

// GenesisState defines the DEX module's genesis state
type GenesisState struct {
	Params Params       `json:"params"`
	Pools  []PoolRecord `json:"pools"`
}

// DefaultGenesis returns the default genesis state for the DEX module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pools:  []PoolRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	pairs := make(map[AssetPair]bool, len(gs.Pools))
	claims := make(map[uint32]bool, len(gs.Pools))
	for _, rec := range gs.Pools {
		canonical, err := NewAssetPair(rec.Pair.First, rec.Pair.Second)
		if err != nil {
			return fmt.Errorf("pool %s: %w", rec.Pair, err)
		}
		if canonical != rec.Pair {
			return fmt.Errorf("pool %s is not in canonical order", rec.Pair)
		}
		if pairs[rec.Pair] {
			return fmt.Errorf("duplicate pool %s", rec.Pair)
		}
		pairs[rec.Pair] = true

		if rec.Pair.Contains(rec.Pool.ClaimAsset) || claims[rec.Pool.ClaimAsset] {
			return fmt.Errorf("pool %s: claim asset %d collides", rec.Pair, rec.Pool.ClaimAsset)
		}
		claims[rec.Pool.ClaimAsset] = true

		if err := rec.Pool.Validate(); err != nil {
			return fmt.Errorf("pool %s: %w", rec.Pair, err)
		}
	}
	return nil
}
