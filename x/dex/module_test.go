package dex_test

import (
	"encoding/json"
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	"github.com/paw-chain/pawdex/x/dex"
	"github.com/paw-chain/pawdex/x/dex/types"
)

func newCodec() *codec.LegacyAmino {
	cdc := codec.NewLegacyAmino()
	dex.AppModuleBasic{}.RegisterLegacyAminoCodec(cdc)
	return cdc
}

// TestAppModuleBasic_Name verifies Name() returns correct module name
func TestAppModuleBasic_Name(t *testing.T) {
	require.Equal(t, "dex", dex.AppModuleBasic{}.Name())
}

// TestAppModuleBasic_DefaultGenesis verifies DefaultGenesis is valid JSON that validates
func TestAppModuleBasic_DefaultGenesis(t *testing.T) {
	amb := dex.AppModuleBasic{}
	cdc := newCodec()

	bz := amb.DefaultGenesis(cdc)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(bz, &raw))
	require.NoError(t, amb.ValidateGenesis(cdc, bz))
}

func TestAppModuleBasic_ValidateGenesis_Invalid(t *testing.T) {
	amb := dex.AppModuleBasic{}
	cdc := newCodec()

	require.Error(t, amb.ValidateGenesis(cdc, json.RawMessage(`{not json`)))

	genState := types.DefaultGenesis()
	genState.Params.FeePercent = 100
	require.Error(t, amb.ValidateGenesis(cdc, cdc.MustMarshalJSON(genState)))
}

func TestAppModule_GenesisRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.DexKeeper(t)
	am := dex.NewAppModule(k)
	cdc := newCodec()

	exported, err := am.ExportGenesis(ctx, cdc)
	require.NoError(t, err)
	require.NoError(t, am.ValidateGenesis(cdc, exported))

	genState := types.DefaultGenesis()
	genState.Params.FeePercent = 1
	require.NoError(t, am.InitGenesis(ctx, cdc, cdc.MustMarshalJSON(genState)))
	require.Equal(t, uint32(1), k.GetParams(ctx).FeePercent)
}

type routeRecorder struct{ routes []string }

func (r *routeRecorder) RegisterRoute(moduleName, route string, _ sdk.Invariant) {
	r.routes = append(r.routes, moduleName+"/"+route)
}

func TestAppModule_RegisterInvariants(t *testing.T) {
	k, _, _ := keepertest.DexKeeper(t)
	var ir routeRecorder
	dex.NewAppModule(k).RegisterInvariants(&ir)
	require.ElementsMatch(t, []string{"dex/reserve-backing", "dex/locked-liquidity"}, ir.routes)
	require.Equal(t, uint64(1), dex.NewAppModule(k).ConsensusVersion())
}
