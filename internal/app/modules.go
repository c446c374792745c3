package app

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/paw-chain/pawdex/x/assets"
	"github.com/paw-chain/pawdex/x/dex"
)

// ModuleBasic is the keeper-independent surface of a module
type ModuleBasic interface {
	module.HasName
	RegisterLegacyAminoCodec(cdc *codec.LegacyAmino)
	DefaultGenesis(cdc *codec.LegacyAmino) json.RawMessage
	ValidateGenesis(cdc *codec.LegacyAmino, bz json.RawMessage) error
}

// Module is a module bound to its keeper
type Module interface {
	ModuleBasic
	module.HasInvariants
	InitGenesis(ctx sdk.Context, cdc *codec.LegacyAmino, bz json.RawMessage) error
	ExportGenesis(ctx sdk.Context, cdc *codec.LegacyAmino) (json.RawMessage, error)
}

// ModuleBasics lists the modules in genesis order. The ledger goes first so
// pools can reference their assets.
var ModuleBasics = []ModuleBasic{
	assets.AppModuleBasic{},
	dex.AppModuleBasic{},
}

func isKnownModule(name string) bool {
	for _, m := range ModuleBasics {
		if m.Name() == name {
			return true
		}
	}
	return false
}

// initGenesis runs each module's InitGenesis in order; modules absent from
// genesis start from their defaults.
func initGenesis(ctx sdk.Context, cdc *codec.LegacyAmino, modules []Module, genesis GenesisState) error {
	for _, m := range modules {
		bz, ok := genesis[m.Name()]
		if !ok {
			bz = m.DefaultGenesis(cdc)
		}
		if err := m.InitGenesis(ctx, cdc, bz); err != nil {
			return fmt.Errorf("%s genesis: %w", m.Name(), err)
		}
	}
	return nil
}

func exportGenesis(ctx sdk.Context, cdc *codec.LegacyAmino, modules []Module) (GenesisState, error) {
	genesis := make(GenesisState, len(modules))
	for _, m := range modules {
		bz, err := m.ExportGenesis(ctx, cdc)
		if err != nil {
			return nil, fmt.Errorf("%s genesis: %w", m.Name(), err)
		}
		genesis[m.Name()] = bz
	}
	return genesis, nil
}
