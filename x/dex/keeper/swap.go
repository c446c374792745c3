package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// GetAmountOut returns the output a constant-product pool pays for amountIn
// after the fee is taken from the input:
//
//	out = floor(in' * reserveOut / (reserveIn + in')),  in' = in - fee(in)
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int, feePercent uint32) (math.Int, error) {
	if err := checkOperands(amountIn, reserveIn, reserveOut); err != nil {
		return math.ZeroInt(), err
	}
	if reserveIn.IsZero() && reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrReserveIsZero
	}

	inAfterFee := amountIn.Sub(PoolFee(amountIn, feePercent))
	denominator, err := SafeAdd(reserveIn, inAfterFee)
	if err != nil {
		return math.ZeroInt(), err
	}

	return MulDiv(inAfterFee, reserveOut, denominator)
}

// GetAmountIn returns the input charged for exactly amountOut:
//
//	in = floor(reserveIn * out / (reserveOut - fee(out))) + 1
//
// The output side can never be drained completely.
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int, feePercent uint32) (math.Int, error) {
	if err := checkOperands(amountOut, reserveIn, reserveOut); err != nil {
		return math.ZeroInt(), err
	}
	if reserveIn.IsZero() && reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrReserveIsZero
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientAmount.Wrapf("amount out %s must be below reserve %s", amountOut, reserveOut)
	}

	denominator, err := SafeSub(reserveOut, PoolFee(amountOut, feePercent))
	if err != nil {
		return math.ZeroInt(), err
	}
	quotient, err := MulDiv(reserveIn, amountOut, denominator)
	if err != nil {
		return math.ZeroInt(), err
	}

	return SafeAdd(quotient, math.OneInt())
}

// Quote converts amount at the pure reserve ratio, with no fee:
// floor(amount * reserveTo / reserveFrom).
func Quote(amount, reserveFrom, reserveTo math.Int) (math.Int, error) {
	return MulDiv(amount, reserveTo, reserveFrom)
}

// computeSwapExactIn prices an exact-input swap against a pool snapshot.
func computeSwapExactIn(pool types.PoolInfo, inIsFirst bool, amountIn, minOut math.Int, feePercent uint32) (math.Int, types.PoolInfo, error) {
	if !positive(amountIn) || !positive(minOut) {
		return math.ZeroInt(), pool, types.ErrInvalidAmount.Wrap("amount in and minimum out must be positive")
	}

	reserveIn, reserveOut := pool.Reserves(inIsFirst)
	amountOut, err := GetAmountOut(amountIn, reserveIn, reserveOut, feePercent)
	if err != nil {
		return math.ZeroInt(), pool, err
	}
	if amountOut.LT(minOut) {
		return math.ZeroInt(), pool, types.ErrProvidedMinimumNotSufficientForSwap.Wrapf("out %s, minimum %s", amountOut, minOut)
	}

	next, err := pool.ApplySwap(inIsFirst, amountIn, amountOut)
	if err != nil {
		return math.ZeroInt(), pool, err
	}
	return amountOut, next, nil
}

// computeSwapExactOut prices an exact-output swap against a pool snapshot.
func computeSwapExactOut(pool types.PoolInfo, inIsFirst bool, amountOut, maxIn math.Int, feePercent uint32) (math.Int, types.PoolInfo, error) {
	if !positive(amountOut) || !positive(maxIn) {
		return math.ZeroInt(), pool, types.ErrInvalidAmount.Wrap("amount out and maximum in must be positive")
	}

	reserveIn, reserveOut := pool.Reserves(inIsFirst)
	amountIn, err := GetAmountIn(amountOut, reserveIn, reserveOut, feePercent)
	if err != nil {
		return math.ZeroInt(), pool, err
	}
	if amountIn.GT(maxIn) {
		return math.ZeroInt(), pool, types.ErrProvidedMaximumNotSufficientForSwap.Wrapf("in %s, maximum %s", amountIn, maxIn)
	}

	next, err := pool.ApplySwap(inIsFirst, amountIn, amountOut)
	if err != nil {
		return math.ZeroInt(), pool, err
	}
	return amountIn, next, nil
}

// SwapExactIn sells exactly amountIn of assetIn for at least minOut of assetOut.
func (k Keeper) SwapExactIn(ctx context.Context, sender sdk.AccAddress, assetIn, assetOut uint32, amountIn, minOut math.Int) (types.SwapResult, error) {
	if !positive(amountIn) || !positive(minOut) {
		return types.SwapResult{}, types.ErrInvalidAmount.Wrap("amount in and minimum out must be positive")
	}

	var result types.SwapResult
	err := k.swap(ctx, sender, assetIn, assetOut, func(pool types.PoolInfo, inIsFirst bool, feePercent uint32) (types.SwapResult, types.PoolInfo, error) {
		amountOut, next, err := computeSwapExactIn(pool, inIsFirst, amountIn, minOut, feePercent)
		return types.SwapResult{AmountIn: amountIn, AmountOut: amountOut}, next, err
	}, &result)
	k.recordOp(opSwapExactIn, err)
	return result, err
}

// SwapExactOut buys exactly amountOut of assetOut for at most maxIn of assetIn.
func (k Keeper) SwapExactOut(ctx context.Context, sender sdk.AccAddress, assetIn, assetOut uint32, amountOut, maxIn math.Int) (types.SwapResult, error) {
	if !positive(amountOut) || !positive(maxIn) {
		return types.SwapResult{}, types.ErrInvalidAmount.Wrap("amount out and maximum in must be positive")
	}

	var result types.SwapResult
	err := k.swap(ctx, sender, assetIn, assetOut, func(pool types.PoolInfo, inIsFirst bool, feePercent uint32) (types.SwapResult, types.PoolInfo, error) {
		amountIn, next, err := computeSwapExactOut(pool, inIsFirst, amountOut, maxIn, feePercent)
		return types.SwapResult{AmountIn: amountIn, AmountOut: amountOut}, next, err
	}, &result)
	k.recordOp(opSwapExactOut, err)
	return result, err
}

type swapPricer func(pool types.PoolInfo, inIsFirst bool, feePercent uint32) (types.SwapResult, types.PoolInfo, error)

// swap is the shared load, price, settle and store path of both swap kinds.
func (k Keeper) swap(ctx context.Context, sender sdk.AccAddress, assetIn, assetOut uint32, price swapPricer, out *types.SwapResult) error {
	pair, err := types.NewAssetPair(assetIn, assetOut)
	if err != nil {
		return err
	}
	inIsFirst, err := pair.Orient(assetIn)
	if err != nil {
		return err
	}

	err = k.execute(ctx, pair, func(cacheCtx sdk.Context) (sdk.Event, error) {
		pool, err := k.GetPool(cacheCtx, pair)
		if err != nil {
			return sdk.Event{}, err
		}

		result, next, err := price(pool, inIsFirst, k.GetParams(cacheCtx).FeePercent)
		if err != nil {
			return sdk.Event{}, err
		}

		custodian := k.PoolAccount(pair)
		if err := k.assetsKeeper.Transfer(cacheCtx, assetIn, sender, custodian, result.AmountIn, assetstypes.Preserve); err != nil {
			return sdk.Event{}, err
		}
		if err := k.assetsKeeper.Transfer(cacheCtx, assetOut, custodian, sender, result.AmountOut, assetstypes.Preserve); err != nil {
			return sdk.Event{}, err
		}

		k.SetPool(cacheCtx, pair, next)
		*out = result

		return sdk.NewEvent(
			types.EventTypeSwapped,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, fmt.Sprintf("%d", assetIn)),
			sdk.NewAttribute(types.AttributeKeyAmountIn, result.AmountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, fmt.Sprintf("%d", assetOut)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, result.AmountOut.String()),
		), nil
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("swap executed", "pair", pair.String(), "sender", sender.String(),
		"asset_in", assetIn, "amount_in", out.AmountIn.String(),
		"asset_out", assetOut, "amount_out", out.AmountOut.String())
	if k.metrics != nil {
		k.metrics.SwapVolume.WithLabelValues(fmt.Sprintf("%d", assetIn), "in").Add(toFloat(out.AmountIn))
		k.metrics.SwapVolume.WithLabelValues(fmt.Sprintf("%d", assetOut), "out").Add(toFloat(out.AmountOut))
	}
	return nil
}

// orientedReserves loads a pool and returns (reserveIn, reserveOut) for assetIn.
func (k Keeper) orientedReserves(ctx context.Context, assetIn, assetOut uint32) (math.Int, math.Int, error) {
	pair, err := types.NewAssetPair(assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	pool, err := k.GetPool(ctx, pair)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	reserveIn, reserveOut := pool.Reserves(assetIn == pair.First)
	return reserveIn, reserveOut, nil
}

// canonicalReserves loads the pool of the pair and returns its reserves in
// pair order, whatever order the assets are given in.
func (k Keeper) canonicalReserves(ctx context.Context, assetA, assetB uint32) (math.Int, math.Int, error) {
	pair, err := types.NewAssetPair(assetA, assetB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	pool, err := k.GetPool(ctx, pair)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if pool.ReserveFirst.IsZero() || pool.ReserveSecond.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrReserveIsZero
	}
	return pool.ReserveFirst, pool.ReserveSecond, nil
}

// QuoteExactFor prices amount of the pair's first member in its second
// member at the pool ratio, with no fee. Argument order only selects the
// pair, so QuoteExactFor(a, b, x) == QuoteExactFor(b, a, x).
func (k Keeper) QuoteExactFor(ctx context.Context, assetIn, assetOut uint32, amount math.Int) (math.Int, error) {
	reserveFirst, reserveSecond, err := k.canonicalReserves(ctx, assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	quote, err := Quote(amount, reserveFirst, reserveSecond)
	k.Logger(ctx).Debug("quote exact for", "asset_in", assetIn, "asset_out", assetOut, "amount", amount.String(), "quote", quote.String())
	return quote, err
}

// QuoteForExact prices amount of the pair's second member in its first
// member. It inverts QuoteExactFor for either argument order.
func (k Keeper) QuoteForExact(ctx context.Context, assetIn, assetOut uint32, amount math.Int) (math.Int, error) {
	reserveFirst, reserveSecond, err := k.canonicalReserves(ctx, assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	quote, err := Quote(amount, reserveSecond, reserveFirst)
	k.Logger(ctx).Debug("quote for exact", "asset_in", assetIn, "asset_out", assetOut, "amount", amount.String(), "quote", quote.String())
	return quote, err
}

// SimulateExactIn returns what SwapExactIn would pay out, without touching state.
func (k Keeper) SimulateExactIn(ctx context.Context, assetIn, assetOut uint32, amountIn math.Int) (math.Int, error) {
	reserveIn, reserveOut, err := k.orientedReserves(ctx, assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return GetAmountOut(amountIn, reserveIn, reserveOut, k.GetParams(ctx).FeePercent)
}

// SimulateExactOut returns what SwapExactOut would charge, without touching state.
func (k Keeper) SimulateExactOut(ctx context.Context, assetIn, assetOut uint32, amountOut math.Int) (math.Int, error) {
	reserveIn, reserveOut, err := k.orientedReserves(ctx, assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return GetAmountIn(amountOut, reserveIn, reserveOut, k.GetParams(ctx).FeePercent)
}
