package types

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxBalance is the largest balance or issuance the ledger represents (2^128-1).
var MaxBalance = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// Asset holds the ledger metadata of a fungible asset.
type Asset struct {
	Id           uint32         `json:"id"`
	Owner        sdk.AccAddress `json:"owner"`
	IsSufficient bool           `json:"is_sufficient"`
	MinBalance   math.Int       `json:"min_balance"`
	Supply       math.Int       `json:"supply"`
}

// NewAsset returns an asset with zero supply.
func NewAsset(id uint32, owner sdk.AccAddress, isSufficient bool, minBalance math.Int) Asset {
	return Asset{
		Id:           id,
		Owner:        owner,
		IsSufficient: isSufficient,
		MinBalance:   minBalance,
		Supply:       math.ZeroInt(),
	}
}

// Validate performs stateless checks on the asset metadata.
func (a Asset) Validate() error {
	if a.MinBalance.IsNil() || !a.MinBalance.IsPositive() {
		return ErrInvalidMinBalance.Wrapf("asset %d", a.Id)
	}
	if a.Supply.IsNil() || a.Supply.IsNegative() {
		return ErrInvalidAmount.Wrapf("asset %d: negative supply", a.Id)
	}
	if a.Supply.GT(MaxBalance) {
		return ErrOverflow.Wrapf("asset %d: supply exceeds maximum", a.Id)
	}
	return nil
}

// Balance is a single (asset, account) holding, used by genesis.
type Balance struct {
	AssetId uint32         `json:"asset_id"`
	Address sdk.AccAddress `json:"address"`
	Amount  math.Int       `json:"amount"`
}

func (b Balance) String() string {
	return fmt.Sprintf("%s:%d:%s", b.Address, b.AssetId, b.Amount)
}

// InRange reports whether amt is a representable, non-negative ledger amount.
func InRange(amt math.Int) bool {
	return !amt.IsNil() && !amt.IsNegative() && amt.LTE(MaxBalance)
}
