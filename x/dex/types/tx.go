package types

import (
	"context"
)

// MsgCreatePoolResponse returns the canonical pair of the new pool
type MsgCreatePoolResponse struct {
	Pair AssetPair `json:"pair"`
}

// MsgAddLiquidityResponse reports the accepted deposit
type MsgAddLiquidityResponse struct {
	AddLiquidityResult
}

// MsgRemoveLiquidityResponse reports the redemption
type MsgRemoveLiquidityResponse struct {
	RemoveLiquidityResult
}

// MsgSwapResponse reports the executed swap
type MsgSwapResponse struct {
	SwapResult
}

// MsgServer is the message handler surface of the DEX module
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapExactIn(context.Context, *MsgSwapExactIn) (*MsgSwapResponse, error)
	SwapExactOut(context.Context, *MsgSwapExactOut) (*MsgSwapResponse, error)
}
