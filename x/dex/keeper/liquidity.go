package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex/types"
)

// deposit is the outcome of the proportional-deposit rule, in canonical order.
type deposit struct {
	amountFirst  math.Int
	amountSecond math.Int
	minted       math.Int
	// firstMint is set when the claim asset has no issuance yet and
	// MinLiquidity must be locked with the custodian.
	firstMint bool
	pool      types.PoolInfo
}

// withdrawal is the outcome of a redemption, in canonical order.
type withdrawal struct {
	amountFirst  math.Int
	amountSecond math.Int
	fee          math.Int
	pool         types.PoolInfo
}

// computeDeposit applies the proportional-deposit rule and the claim-token
// mint formula to a pool snapshot. Amounts are in canonical order.
func computeDeposit(
	pool types.PoolInfo,
	issuance math.Int,
	desiredFirst, desiredSecond, minFirst, minSecond math.Int,
	minLiquidity math.Int,
) (deposit, error) {
	if !positive(desiredFirst) || !positive(desiredSecond) {
		return deposit{}, types.ErrInvalidDesiredAmount.Wrap("desired amounts must be positive")
	}
	if err := checkOperands(desiredFirst, desiredSecond, minFirst, minSecond); err != nil {
		return deposit{}, err
	}

	var amountFirst, amountSecond math.Int
	if pool.IsEmpty() {
		// first liquidity sets the price
		amountFirst, amountSecond = desiredFirst, desiredSecond
	} else {
		optimalSecond, err := MulDiv(desiredFirst, pool.ReserveSecond, pool.ReserveFirst)
		if err != nil {
			return deposit{}, err
		}

		if optimalSecond.LTE(desiredSecond) {
			if optimalSecond.LT(minSecond) {
				return deposit{}, types.ErrInsufficientAmount.Wrapf("optimal %s below minimum %s", optimalSecond, minSecond)
			}
			amountFirst, amountSecond = desiredFirst, optimalSecond
		} else {
			optimalFirst, err := MulDiv(desiredSecond, pool.ReserveFirst, pool.ReserveSecond)
			if err != nil {
				return deposit{}, err
			}
			if optimalFirst.GT(desiredFirst) {
				return deposit{}, types.ErrInsufficientAmount.Wrapf("optimal %s above desired %s", optimalFirst, desiredFirst)
			}
			if optimalFirst.LT(minFirst) {
				return deposit{}, types.ErrInsufficientAmount.Wrapf("optimal %s below minimum %s", optimalFirst, minFirst)
			}
			amountFirst, amountSecond = optimalFirst, desiredSecond
		}
	}

	var (
		minted    math.Int
		firstMint = issuance.IsZero()
	)
	if firstMint {
		root, err := IntegerSqrt(amountFirst.Mul(amountSecond))
		if err != nil {
			return deposit{}, err
		}
		if root.LTE(minLiquidity) {
			return deposit{}, types.ErrInsufficientLiquidity.Wrapf("sqrt(%s*%s)=%s does not exceed locked minimum %s",
				amountFirst, amountSecond, root, minLiquidity)
		}
		minted = root.Sub(minLiquidity)
	} else {
		byFirst, err := MulDiv(amountFirst, issuance, pool.ReserveFirst)
		if err != nil {
			return deposit{}, err
		}
		bySecond, err := MulDiv(amountSecond, issuance, pool.ReserveSecond)
		if err != nil {
			return deposit{}, err
		}
		minted = math.MinInt(byFirst, bySecond)
		if minted.IsZero() {
			return deposit{}, types.ErrInsufficientLiquidity.Wrap("deposit mints no claim tokens")
		}
	}

	next, err := pool.AddReserves(amountFirst, amountSecond)
	if err != nil {
		return deposit{}, err
	}

	return deposit{
		amountFirst:  amountFirst,
		amountSecond: amountSecond,
		minted:       minted,
		firstMint:    firstMint,
		pool:         next,
	}, nil
}

// computeWithdrawal prices a redemption of burn claim tokens against a pool
// snapshot. Amounts are in canonical order.
func computeWithdrawal(
	pool types.PoolInfo,
	issuance, burn, minFirst, minSecond math.Int,
	minBalanceFirst, minBalanceSecond math.Int,
	feePercent uint32,
) (withdrawal, error) {
	if !positive(burn) {
		return withdrawal{}, types.ErrInvalidLiquidityAmount.Wrap("burn amount must be positive")
	}
	if err := checkOperands(burn, minFirst, minSecond); err != nil {
		return withdrawal{}, err
	}
	if issuance.IsZero() {
		return withdrawal{}, types.ErrInsufficientLiquidity.Wrap("claim asset has no issuance")
	}

	fee := PoolFee(burn, feePercent)
	net := burn.Sub(fee)

	amountFirst, err := MulDiv(net, pool.ReserveFirst, issuance)
	if err != nil {
		return withdrawal{}, err
	}
	amountSecond, err := MulDiv(net, pool.ReserveSecond, issuance)
	if err != nil {
		return withdrawal{}, err
	}

	if amountFirst.IsZero() || amountFirst.LT(minFirst) {
		return withdrawal{}, types.ErrInsufficientAmount.Wrapf("first asset payout %s, minimum %s", amountFirst, minFirst)
	}
	if amountSecond.IsZero() || amountSecond.LT(minSecond) {
		return withdrawal{}, types.ErrInsufficientAmount.Wrapf("second asset payout %s, minimum %s", amountSecond, minSecond)
	}

	if amountFirst.GT(pool.ReserveFirst) || pool.ReserveFirst.Sub(amountFirst).LT(minBalanceFirst) {
		return withdrawal{}, types.ErrAmountLessThanMinimal.Wrap("first reserve would fall below minimum balance")
	}
	if amountSecond.GT(pool.ReserveSecond) || pool.ReserveSecond.Sub(amountSecond).LT(minBalanceSecond) {
		return withdrawal{}, types.ErrAmountLessThanMinimal.Wrap("second reserve would fall below minimum balance")
	}

	next, err := pool.SubReserves(amountFirst, amountSecond)
	if err != nil {
		return withdrawal{}, err
	}

	return withdrawal{
		amountFirst:  amountFirst,
		amountSecond: amountSecond,
		fee:          fee,
		pool:         next,
	}, nil
}

// CreatePool creates an empty pool for the pair (assetA, assetB) and originates
// its claim asset, owned by the pool's custodian.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, assetA, assetB, claimAsset uint32) (types.AssetPair, error) {
	// 1. Canonicalize the pair
	pair, err := types.NewAssetPair(assetA, assetB)
	if err != nil {
		return types.AssetPair{}, err
	}

	err = k.execute(ctx, pair, func(cacheCtx sdk.Context) (sdk.Event, error) {
		// 2. Both underlying assets must exist
		for _, id := range []uint32{assetA, assetB} {
			if !k.assetsKeeper.AssetExists(cacheCtx, id) {
				return sdk.Event{}, types.ErrAssetNotExists.Wrapf("asset %d", id)
			}
		}

		// 3. One pool per pair
		if k.HasPool(cacheCtx, pair) {
			return sdk.Event{}, types.ErrPoolExists.Wrapf("pair %s", pair)
		}

		// 4. The claim asset id must be fresh
		if k.assetsKeeper.AssetExists(cacheCtx, claimAsset) {
			return sdk.Event{}, types.ErrAssetIdAlreadyTaken.Wrapf("asset %d", claimAsset)
		}

		params := k.GetParams(cacheCtx)

		// 5. Charge the creation fee
		if params.PoolCreationFee.IsPositive() {
			if err := k.assetsKeeper.Transfer(cacheCtx, params.FeeAsset, creator, k.GetModuleAddress(),
				params.PoolCreationFee, assetstypes.Preserve); err != nil {
				return sdk.Event{}, fmt.Errorf("pool creation fee: %w", err)
			}
		}

		// 6. Originate the claim asset under the custodian
		if err := k.assetsKeeper.Create(cacheCtx, claimAsset, k.PoolAccount(pair), true, params.ClaimAssetMinBalance); err != nil {
			return sdk.Event{}, err
		}

		// 7. Register the empty pool
		if _, err := k.createPoolEntry(cacheCtx, pair, claimAsset); err != nil {
			return sdk.Event{}, err
		}

		return sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyAssetFirst, fmt.Sprintf("%d", pair.First)),
			sdk.NewAttribute(types.AttributeKeyAssetSecond, fmt.Sprintf("%d", pair.Second)),
			sdk.NewAttribute(types.AttributeKeyClaimAsset, fmt.Sprintf("%d", claimAsset)),
		), nil
	})
	k.recordOp(opCreatePool, err)
	if err != nil {
		return types.AssetPair{}, err
	}

	k.Logger(ctx).Info("pool created", "pair", pair.String(), "claim_asset", claimAsset, "creator", creator.String())
	if k.metrics != nil {
		k.metrics.PoolsCreated.Inc()
	}
	return pair, nil
}

// AddLiquidity deposits both assets of a pair at the pool's ratio and mints
// claim tokens to mintTo. Amounts are given and returned in (assetA, assetB) order.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	sender sdk.AccAddress,
	assetA, assetB uint32,
	desiredA, desiredB, minA, minB math.Int,
	mintTo sdk.AccAddress,
) (types.AddLiquidityResult, error) {
	if !positive(desiredA) || !positive(desiredB) {
		return types.AddLiquidityResult{}, types.ErrInvalidDesiredAmount.Wrap("desired amounts must be positive")
	}

	pair, err := types.NewAssetPair(assetA, assetB)
	if err != nil {
		return types.AddLiquidityResult{}, err
	}
	aIsFirst := assetA == pair.First

	var result types.AddLiquidityResult
	err = k.execute(ctx, pair, func(cacheCtx sdk.Context) (sdk.Event, error) {
		pool, err := k.GetPool(cacheCtx, pair)
		if err != nil {
			return sdk.Event{}, err
		}
		if !k.assetsKeeper.AssetExists(cacheCtx, pool.ClaimAsset) {
			return sdk.Event{}, types.ErrLiquidityPoolTokenNotExists.Wrapf("asset %d", pool.ClaimAsset)
		}

		params := k.GetParams(cacheCtx)
		issuance := k.assetsKeeper.TotalIssuance(cacheCtx, pool.ClaimAsset)

		desiredFirst, desiredSecond := canonicalOrder(aIsFirst, desiredA, desiredB)
		minFirst, minSecond := canonicalOrder(aIsFirst, minA, minB)
		dep, err := computeDeposit(pool, issuance, desiredFirst, desiredSecond, minFirst, minSecond, params.MinLiquidity)
		if err != nil {
			return sdk.Event{}, err
		}

		custodian := k.PoolAccount(pair)
		if err := k.assetsKeeper.Transfer(cacheCtx, pair.First, sender, custodian, dep.amountFirst, assetstypes.Preserve); err != nil {
			return sdk.Event{}, err
		}
		if err := k.assetsKeeper.Transfer(cacheCtx, pair.Second, sender, custodian, dep.amountSecond, assetstypes.Preserve); err != nil {
			return sdk.Event{}, err
		}

		if dep.firstMint {
			if err := k.assetsKeeper.MintInto(cacheCtx, pool.ClaimAsset, custodian, params.MinLiquidity); err != nil {
				return sdk.Event{}, err
			}
		}
		if err := k.assetsKeeper.MintInto(cacheCtx, pool.ClaimAsset, mintTo, dep.minted); err != nil {
			return sdk.Event{}, err
		}

		k.SetPool(cacheCtx, pair, dep.pool)

		amountA, amountB := canonicalOrder(aIsFirst, dep.amountFirst, dep.amountSecond)
		result = types.AddLiquidityResult{AmountA: amountA, AmountB: amountB, Minted: dep.minted}

		return sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyMintTo, mintTo.String()),
			sdk.NewAttribute(types.AttributeKeyAssetFirst, fmt.Sprintf("%d", pair.First)),
			sdk.NewAttribute(types.AttributeKeyAssetSecond, fmt.Sprintf("%d", pair.Second)),
			sdk.NewAttribute(types.AttributeKeyClaimAsset, fmt.Sprintf("%d", pool.ClaimAsset)),
			sdk.NewAttribute(types.AttributeKeyAmountFirst, dep.amountFirst.String()),
			sdk.NewAttribute(types.AttributeKeyAmountSecond, dep.amountSecond.String()),
			sdk.NewAttribute(types.AttributeKeyMinted, dep.minted.String()),
		), nil
	})
	k.recordOp(opAddLiquidity, err)
	if err != nil {
		return types.AddLiquidityResult{}, err
	}

	k.Logger(ctx).Info("liquidity added", "pair", pair.String(), "sender", sender.String(),
		"amount_a", result.AmountA.String(), "amount_b", result.AmountB.String(), "minted", result.Minted.String())
	return result, nil
}

// RemoveLiquidity burns claim tokens and pays out the proportional share of
// both reserves, less the redemption fee. Amounts are in (assetA, assetB) order.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	sender sdk.AccAddress,
	assetA, assetB uint32,
	burn, minA, minB math.Int,
) (types.RemoveLiquidityResult, error) {
	if !positive(burn) {
		return types.RemoveLiquidityResult{}, types.ErrInvalidLiquidityAmount.Wrap("burn amount must be positive")
	}

	pair, err := types.NewAssetPair(assetA, assetB)
	if err != nil {
		return types.RemoveLiquidityResult{}, err
	}
	aIsFirst := assetA == pair.First

	var result types.RemoveLiquidityResult
	err = k.execute(ctx, pair, func(cacheCtx sdk.Context) (sdk.Event, error) {
		pool, err := k.GetPool(cacheCtx, pair)
		if err != nil {
			return sdk.Event{}, err
		}
		if !k.assetsKeeper.AssetExists(cacheCtx, pool.ClaimAsset) {
			return sdk.Event{}, types.ErrLiquidityPoolTokenNotExists.Wrapf("asset %d", pool.ClaimAsset)
		}

		params := k.GetParams(cacheCtx)
		issuance := k.assetsKeeper.TotalIssuance(cacheCtx, pool.ClaimAsset)
		minFirst, minSecond := canonicalOrder(aIsFirst, minA, minB)

		wd, err := computeWithdrawal(
			pool, issuance, burn, minFirst, minSecond,
			k.assetsKeeper.MinimumBalance(cacheCtx, pair.First),
			k.assetsKeeper.MinimumBalance(cacheCtx, pair.Second),
			params.FeePercent,
		)
		if err != nil {
			return sdk.Event{}, err
		}

		// the fee portion is burned too, which accrues it to the remaining holders
		if _, err := k.assetsKeeper.BurnFrom(cacheCtx, pool.ClaimAsset, sender, burn, assetstypes.Exact, assetstypes.Polite); err != nil {
			return sdk.Event{}, err
		}

		k.SetPool(cacheCtx, pair, wd.pool)

		custodian := k.PoolAccount(pair)
		if err := k.assetsKeeper.Transfer(cacheCtx, pair.First, custodian, sender, wd.amountFirst, assetstypes.Expendable); err != nil {
			return sdk.Event{}, err
		}
		if err := k.assetsKeeper.Transfer(cacheCtx, pair.Second, custodian, sender, wd.amountSecond, assetstypes.Expendable); err != nil {
			return sdk.Event{}, err
		}

		amountA, amountB := canonicalOrder(aIsFirst, wd.amountFirst, wd.amountSecond)
		result = types.RemoveLiquidityResult{AmountA: amountA, AmountB: amountB, Burned: burn, Fee: wd.fee}

		return sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAssetFirst, fmt.Sprintf("%d", pair.First)),
			sdk.NewAttribute(types.AttributeKeyAssetSecond, fmt.Sprintf("%d", pair.Second)),
			sdk.NewAttribute(types.AttributeKeyClaimAsset, fmt.Sprintf("%d", pool.ClaimAsset)),
			sdk.NewAttribute(types.AttributeKeyAmountFirst, wd.amountFirst.String()),
			sdk.NewAttribute(types.AttributeKeyAmountSecond, wd.amountSecond.String()),
			sdk.NewAttribute(types.AttributeKeyBurned, burn.String()),
			sdk.NewAttribute(types.AttributeKeyFee, wd.fee.String()),
		), nil
	})
	k.recordOp(opRemoveLiquidity, err)
	if err != nil {
		return types.RemoveLiquidityResult{}, err
	}

	k.Logger(ctx).Info("liquidity removed", "pair", pair.String(), "sender", sender.String(),
		"burned", burn.String(), "fee", result.Fee.String())
	return result, nil
}

// canonicalOrder maps a value pair given in (a, b) order onto (first, second)
// order, or back; the mapping is its own inverse.
func canonicalOrder(aIsFirst bool, x, y math.Int) (math.Int, math.Int) {
	if aIsFirst {
		return x, y
	}
	return y, x
}
