// Package assets is the multi-asset ledger the dex settles against.
package assets

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/paw-chain/pawdex/x/assets/keeper"
	"github.com/paw-chain/pawdex/x/assets/types"
)

var (
	_ module.HasName             = AppModuleBasic{}
	_ module.HasInvariants       = AppModule{}
	_ module.HasConsensusVersion = AppModule{}

	_ appmodule.AppModule = AppModule{}
)

// AppModuleBasic defines the keeper-independent parts of the assets module.
type AppModuleBasic struct{}

// Name returns the assets module's name.
func (AppModuleBasic) Name() string {
	return types.ModuleName
}

// RegisterLegacyAminoCodec is a no-op; the ledger has no messages.
func (AppModuleBasic) RegisterLegacyAminoCodec(*codec.LegacyAmino) {}

// DefaultGenesis returns an empty ledger.
func (AppModuleBasic) DefaultGenesis(cdc *codec.LegacyAmino) json.RawMessage {
	return cdc.MustMarshalJSON(types.DefaultGenesis())
}

// ValidateGenesis performs genesis state validation for the assets module.
func (AppModuleBasic) ValidateGenesis(cdc *codec.LegacyAmino, bz json.RawMessage) error {
	genState := types.DefaultGenesis()
	if err := cdc.UnmarshalJSON(bz, genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// AppModule implements an application module for the assets module.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(keeper keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

// RegisterInvariants registers the supply invariant.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, am.keeper)
}

// InitGenesis loads assets and balances.
func (am AppModule) InitGenesis(ctx sdk.Context, cdc *codec.LegacyAmino, bz json.RawMessage) error {
	genState := types.DefaultGenesis()
	if err := cdc.UnmarshalJSON(bz, genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return am.keeper.InitGenesis(ctx, *genState)
}

// ExportGenesis returns the ledger as raw genesis bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context, cdc *codec.LegacyAmino) (json.RawMessage, error) {
	return cdc.MarshalJSON(am.keeper.ExportGenesis(ctx))
}

// ConsensusVersion implements ConsensusVersion.
func (AppModule) ConsensusVersion() uint64 { return 1 }

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface.
func (am AppModule) IsAppModule() {}
