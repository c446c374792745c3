package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// RegisterInvariants registers the ledger invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "asset-supply", SupplyInvariant(k))
}

// SupplyInvariant checks that every asset's issuance equals the sum of its balances
// and that no balance sits below the asset minimum.
func SupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateAssets(ctx, func(asset types.Asset) bool {
			sum := math.ZeroInt()
			k.IterateBalances(ctx, asset.Id, func(addr sdk.AccAddress, amount math.Int) bool {
				sum = sum.Add(amount)
				if amount.LT(asset.MinBalance) {
					count++
					msg += fmt.Sprintf("\tasset %d: %s holds %s below minimum %s\n", asset.Id, addr, amount, asset.MinBalance)
				}
				return false
			})
			if !sum.Equal(asset.Supply) {
				count++
				msg += fmt.Sprintf("\tasset %d: supply %s != sum of balances %s\n", asset.Id, asset.Supply, sum)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "asset-supply",
			fmt.Sprintf("found %d supply mismatches\n%s", count, msg),
		), broken
	}
}
