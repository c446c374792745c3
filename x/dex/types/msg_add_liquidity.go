package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity deposits both assets of a pair and mints claim tokens to MintTo
type MsgAddLiquidity struct {
	Sender   string   `json:"sender"`
	AssetA   uint32   `json:"asset_a"`
	AssetB   uint32   `json:"asset_b"`
	DesiredA math.Int `json:"desired_a"`
	DesiredB math.Int `json:"desired_b"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
	MintTo   string   `json:"mint_to"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(sender string, assetA, assetB uint32, desiredA, desiredB, minA, minB math.Int, mintTo string) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Sender:   sender,
		AssetA:   assetA,
		AssetB:   assetB,
		DesiredA: desiredA,
		DesiredB: desiredB,
		MinA:     minA,
		MinB:     minB,
		MintTo:   mintTo,
	}
}

// GetSigners returns the accounts that must authorize the message
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic runs stateless checks
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.MintTo); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid mint_to address: %s", err)
	}

	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.AssetA)
	}

	if !isPositiveAmount(msg.DesiredA) || !isPositiveAmount(msg.DesiredB) {
		return sdkerrors.Wrap(ErrInvalidDesiredAmount, "desired amounts must be positive")
	}

	if !isAmount(msg.MinA) || !isAmount(msg.MinB) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amounts must be non-negative")
	}

	return nil
}
