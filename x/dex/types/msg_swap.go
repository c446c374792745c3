package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwapExactIn sells exactly AmountIn of AssetIn for at least MinAmountOut of AssetOut
type MsgSwapExactIn struct {
	Sender       string   `json:"sender"`
	AssetIn      uint32   `json:"asset_in"`
	AssetOut     uint32   `json:"asset_out"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance
func NewMsgSwapExactIn(sender string, assetIn, assetOut uint32, amountIn, minAmountOut math.Int) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Sender:       sender,
		AssetIn:      assetIn,
		AssetOut:     assetOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// GetSigners returns the accounts that must authorize the message
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic runs stateless checks
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.AssetIn == msg.AssetOut {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.AssetIn)
	}

	if !isPositiveAmount(msg.AmountIn) || !isPositiveAmount(msg.MinAmountOut) {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in and minimum out must be positive")
	}

	return nil
}

// MsgSwapExactOut buys exactly AmountOut of AssetOut for at most MaxAmountIn of AssetIn
type MsgSwapExactOut struct {
	Sender      string   `json:"sender"`
	AssetIn     uint32   `json:"asset_in"`
	AssetOut    uint32   `json:"asset_out"`
	AmountOut   math.Int `json:"amount_out"`
	MaxAmountIn math.Int `json:"max_amount_in"`
}

// NewMsgSwapExactOut creates a new MsgSwapExactOut instance
func NewMsgSwapExactOut(sender string, assetIn, assetOut uint32, amountOut, maxAmountIn math.Int) *MsgSwapExactOut {
	return &MsgSwapExactOut{
		Sender:      sender,
		AssetIn:     assetIn,
		AssetOut:    assetOut,
		AmountOut:   amountOut,
		MaxAmountIn: maxAmountIn,
	}
}

// GetSigners returns the accounts that must authorize the message
func (msg MsgSwapExactOut) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic runs stateless checks
func (msg MsgSwapExactOut) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}

	if msg.AssetIn == msg.AssetOut {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.AssetIn)
	}

	if !isPositiveAmount(msg.AmountOut) || !isPositiveAmount(msg.MaxAmountIn) {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount out and maximum in must be positive")
	}

	return nil
}

func isAmount(amt math.Int) bool {
	return !amt.IsNil() && !amt.IsNegative() && amt.LTE(MaxAmount)
}

func isPositiveAmount(amt math.Int) bool {
	return isAmount(amt) && amt.IsPositive()
}
