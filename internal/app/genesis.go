package app

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/types/address"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// GenesisState is the engine's genesis state, a map from module name to
// that module's genesis state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState returns an empty ledger holding only the native fee
// asset, owned by the dex module, and default dex params.
func NewDefaultGenesisState(cdc *codec.LegacyAmino) GenesisState {
	assetsGenesis := assetstypes.DefaultGenesis()
	assetsGenesis.Assets = append(assetsGenesis.Assets,
		assetstypes.NewAsset(NativeAssetID, address.Module(dextypes.ModuleName), true, math.OneInt()))

	dexGenesis := dextypes.DefaultGenesis()
	dexGenesis.Params.FeeAsset = NativeAssetID

	return GenesisState{
		assetstypes.ModuleName: cdc.MustMarshalJSON(assetsGenesis),
		dextypes.ModuleName:    cdc.MustMarshalJSON(dexGenesis),
	}
}

// Modules decodes the per-module genesis states. Missing modules decode to
// their defaults.
func (gs GenesisState) Modules(cdc *codec.LegacyAmino) (*assetstypes.GenesisState, *dextypes.GenesisState, error) {
	assetsGenesis := assetstypes.DefaultGenesis()
	if raw, ok := gs[assetstypes.ModuleName]; ok {
		if err := cdc.UnmarshalJSON(raw, assetsGenesis); err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s genesis: %w", assetstypes.ModuleName, err)
		}
	}

	dexGenesis := dextypes.DefaultGenesis()
	if raw, ok := gs[dextypes.ModuleName]; ok {
		if err := cdc.UnmarshalJSON(raw, dexGenesis); err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s genesis: %w", dextypes.ModuleName, err)
		}
	}

	return assetsGenesis, dexGenesis, nil
}

// Validate checks each module's genesis and that every asset the dex refers
// to exists in the ledger.
func (gs GenesisState) Validate(cdc *codec.LegacyAmino) error {
	for name := range gs {
		if !isKnownModule(name) {
			return fmt.Errorf("unknown module %q in genesis", name)
		}
	}
	for _, m := range ModuleBasics {
		if bz, ok := gs[m.Name()]; ok {
			if err := m.ValidateGenesis(cdc, bz); err != nil {
				return fmt.Errorf("%s genesis: %w", m.Name(), err)
			}
		}
	}

	assetsGenesis, dexGenesis, err := gs.Modules(cdc)
	if err != nil {
		return err
	}

	known := make(map[uint32]bool, len(assetsGenesis.Assets))
	for _, asset := range assetsGenesis.Assets {
		known[asset.Id] = true
	}
	if !known[dexGenesis.Params.FeeAsset] {
		return fmt.Errorf("fee asset %d is not in the ledger", dexGenesis.Params.FeeAsset)
	}
	for _, rec := range dexGenesis.Pools {
		for _, id := range []uint32{rec.Pair.First, rec.Pair.Second, rec.Pool.ClaimAsset} {
			if !known[id] {
				return fmt.Errorf("pool %s: asset %d is not in the ledger", rec.Pair, id)
			}
		}
	}
	return nil
}

// LoadGenesis reads a genesis file
func LoadGenesis(path string) (GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis: %w", err)
	}

	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse genesis: %w", err)
	}
	return gs, nil
}

// SaveGenesis writes gs to path as indented JSON
func SaveGenesis(path string, gs GenesisState) error {
	bz, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode genesis: %w", err)
	}
	return os.WriteFile(path, bz, 0o600)
}
