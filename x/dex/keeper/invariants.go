package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// RegisterInvariants registers all DEX invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "locked-liquidity", LockedLiquidityInvariant(k))
}

// AllInvariants runs all invariants of the DEX module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return LockedLiquidityInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that every reserve is held by the pool's
// custodian. Transfers made directly to a custodian can leave the balance
// above the reserve, never below it.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePools(ctx, func(pair types.AssetPair, pool types.PoolInfo) bool {
			custodian := k.PoolAccount(pair)
			balanceFirst := k.assetsKeeper.Balance(ctx, pair.First, custodian)
			balanceSecond := k.assetsKeeper.Balance(ctx, pair.Second, custodian)

			if pool.ReserveFirst.GT(balanceFirst) {
				count++
				msg += fmt.Sprintf("\tpool %s: reserve %s of asset %d exceeds custodian balance %s\n",
					pair, pool.ReserveFirst, pair.First, balanceFirst)
			}
			if pool.ReserveSecond.GT(balanceSecond) {
				count++
				msg += fmt.Sprintf("\tpool %s: reserve %s of asset %d exceeds custodian balance %s\n",
					pair, pool.ReserveSecond, pair.Second, balanceSecond)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d unbacked reserves\n%s", count, msg),
		), broken
	}
}

// LockedLiquidityInvariant checks that each pool's claim asset exists and that
// the custodian still holds the locked minimum once claim tokens are issued.
func LockedLiquidityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		minLiquidity := k.GetParams(ctx).MinLiquidity
		k.IteratePools(ctx, func(pair types.AssetPair, pool types.PoolInfo) bool {
			if !k.assetsKeeper.AssetExists(ctx, pool.ClaimAsset) {
				count++
				msg += fmt.Sprintf("\tpool %s: claim asset %d missing\n", pair, pool.ClaimAsset)
				return false
			}

			issuance := k.assetsKeeper.TotalIssuance(ctx, pool.ClaimAsset)
			if issuance.IsZero() {
				return false
			}
			locked := k.assetsKeeper.Balance(ctx, pool.ClaimAsset, k.PoolAccount(pair))
			if locked.LT(minLiquidity) {
				count++
				msg += fmt.Sprintf("\tpool %s: custodian holds %s claim tokens, locked minimum %s\n", pair, locked, minLiquidity)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "locked-liquidity",
			fmt.Sprintf("found %d locked-liquidity violations\n%s", count, msg),
		), broken
	}
}
