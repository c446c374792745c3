package types

import (
	"cosmossdk.io/math"
)

// AddLiquidityResult reports a deposit in the caller's (a, b) order.
type AddLiquidityResult struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	Minted  math.Int `json:"minted"`
}

// RemoveLiquidityResult reports a redemption in the caller's (a, b) order.
type RemoveLiquidityResult struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	Burned  math.Int `json:"burned"`
	Fee     math.Int `json:"fee"`
}

// SwapResult reports the executed amounts of a swap.
type SwapResult struct {
	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
}
