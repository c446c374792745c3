package app

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// MakeLegacyAmino returns the amino codec used for genesis files and messages.
func MakeLegacyAmino() *codec.LegacyAmino {
	cdc := codec.NewLegacyAmino()
	for _, m := range ModuleBasics {
		m.RegisterLegacyAminoCodec(cdc)
	}
	cdc.Seal()
	return cdc
}
