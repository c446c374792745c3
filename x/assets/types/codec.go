package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes ledger state as amino JSON.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	ModuleCdc.Seal()
}
