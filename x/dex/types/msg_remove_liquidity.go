package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgRemoveLiquidity burns claim tokens for a share of both reserves
type MsgRemoveLiquidity struct {
	Sender string   `json:"sender"`
	AssetA uint32   `json:"asset_a"`
	AssetB uint32   `json:"asset_b"`
	Burn   math.Int `json:"burn"`
	MinA   math.Int `json:"min_a"`
	MinB   math.Int `json:"min_b"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(sender string, assetA, assetB uint32, burn, minA, minB math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Sender: sender,
		AssetA: assetA,
		AssetB: assetB,
		Burn:   burn,
		MinA:   minA,
		MinB:   minB,
	}
}

// GetSigners returns the accounts that must authorize the message
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic runs stateless checks
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.AssetA)
	}

	if !isPositiveAmount(msg.Burn) {
		return sdkerrors.Wrap(ErrInvalidLiquidityAmount, "burn amount must be positive")
	}

	if !isAmount(msg.MinA) || !isAmount(msg.MinB) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts must be non-negative")
	}

	return nil
}
