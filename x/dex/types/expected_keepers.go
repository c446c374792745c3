package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
)

// AssetsKeeper is the asset ledger the engines move value through.
type AssetsKeeper interface {
	Transfer(ctx context.Context, id uint32, from, to sdk.AccAddress, amount math.Int, preservation assetstypes.Preservation) error
	MintInto(ctx context.Context, id uint32, to sdk.AccAddress, amount math.Int) error
	BurnFrom(ctx context.Context, id uint32, from sdk.AccAddress, amount math.Int, precision assetstypes.Precision, fortitude assetstypes.Fortitude) (math.Int, error)
	Create(ctx context.Context, id uint32, owner sdk.AccAddress, isSufficient bool, minBalance math.Int) error

	AssetExists(ctx context.Context, id uint32) bool
	TotalIssuance(ctx context.Context, id uint32) math.Int
	MinimumBalance(ctx context.Context, id uint32) math.Int
	ReducibleBalance(ctx context.Context, id uint32, addr sdk.AccAddress, preservation assetstypes.Preservation) math.Int
	Balance(ctx context.Context, id uint32, addr sdk.AccAddress) math.Int
}
