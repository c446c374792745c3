package keeper

import (
	"context"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets/types"
)

// Balance returns the balance an account holds of an asset
func (k Keeper) Balance(ctx context.Context, id uint32, addr sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(types.BalanceKey(id, addr))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

// setBalance writes a balance, deleting the entry when it reaches zero.
func (k Keeper) setBalance(ctx context.Context, id uint32, addr sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	key := types.BalanceKey(id, addr)
	if amount.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// ReducibleBalance returns how much of an account's balance can be moved out
// under the given preservation rule.
func (k Keeper) ReducibleBalance(ctx context.Context, id uint32, addr sdk.AccAddress, preservation types.Preservation) math.Int {
	balance := k.Balance(ctx, id, addr)
	if preservation == types.Expendable {
		return balance
	}

	minBalance := k.MinimumBalance(ctx, id)
	if balance.LTE(minBalance) {
		return math.ZeroInt()
	}
	return balance.Sub(minBalance)
}

// IterateBalances walks every non-zero holding of an asset until cb returns true
func (k Keeper) IterateBalances(ctx context.Context, id uint32, cb func(addr sdk.AccAddress, amount math.Int) (stop bool)) {
	store := prefix.NewStore(k.getStore(ctx), types.BalancesPrefix(id))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(types.AddressFromBalanceKey(iterator.Key()), amount) {
			break
		}
	}
}

// MintInto credits newly issued units of an asset to an account.
func (k Keeper) MintInto(ctx context.Context, id uint32, to sdk.AccAddress, amount math.Int) error {
	asset, err := k.mustGetAsset(ctx, id)
	if err != nil {
		return err
	}
	if !types.InRange(amount) {
		return types.ErrInvalidAmount.Wrapf("mint %s of asset %d", amount, id)
	}
	if amount.IsZero() {
		return nil
	}

	supply := asset.Supply.Add(amount)
	if supply.GT(types.MaxBalance) {
		return types.ErrOverflow.Wrapf("issuance of asset %d", id)
	}

	balance := k.Balance(ctx, id, to).Add(amount)
	if balance.LT(asset.MinBalance) {
		return types.ErrBelowMinimum.Wrapf("mint %s of asset %d leaves %s below %s", amount, id, balance, asset.MinBalance)
	}

	asset.Supply = supply
	k.SetAsset(ctx, asset)
	k.setBalance(ctx, id, to, balance)
	return nil
}

// Issue mints on behalf of the asset owner. Any other signer is refused.
func (k Keeper) Issue(ctx context.Context, id uint32, signer, to sdk.AccAddress, amount math.Int) error {
	asset, err := k.mustGetAsset(ctx, id)
	if err != nil {
		return err
	}
	if !asset.Owner.Equals(signer) {
		return types.ErrNotOwner.Wrapf("%s does not own asset %d", signer, id)
	}
	return k.MintInto(ctx, id, to, amount)
}

// BurnFrom destroys units of an asset held by an account and returns the amount burned.
//
// Exact fails with ErrFundsUnavailable when the balance is short; BestEffort
// burns what there is. Polite refuses to leave dust below the minimum balance,
// Force burns the dust too.
func (k Keeper) BurnFrom(ctx context.Context, id uint32, from sdk.AccAddress, amount math.Int, precision types.Precision, fortitude types.Fortitude) (math.Int, error) {
	asset, err := k.mustGetAsset(ctx, id)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !types.InRange(amount) {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("burn %s of asset %d", amount, id)
	}

	balance := k.Balance(ctx, id, from)
	if amount.GT(balance) {
		if precision == types.Exact {
			return math.ZeroInt(), types.ErrFundsUnavailable.Wrapf("burn %s of asset %d, balance %s", amount, id, balance)
		}
		amount = balance
	}

	remainder := balance.Sub(amount)
	if remainder.IsPositive() && remainder.LT(asset.MinBalance) {
		if fortitude == types.Polite {
			return math.ZeroInt(), types.ErrBelowMinimum.Wrapf("burn of asset %d would leave %s", id, remainder)
		}
		amount = balance
		remainder = math.ZeroInt()
	}

	asset.Supply = asset.Supply.Sub(amount)
	k.SetAsset(ctx, asset)
	k.setBalance(ctx, id, from, remainder)
	return amount, nil
}

// Transfer moves units of an asset between accounts.
//
// With Preserve the sender must keep at least the minimum balance. With
// Expendable a remainder below the minimum is burned and the sender emptied.
// The recipient must end at or above the minimum balance.
func (k Keeper) Transfer(ctx context.Context, id uint32, from, to sdk.AccAddress, amount math.Int, preservation types.Preservation) error {
	asset, err := k.mustGetAsset(ctx, id)
	if err != nil {
		return err
	}
	if !types.InRange(amount) {
		return types.ErrInvalidAmount.Wrapf("transfer %s of asset %d", amount, id)
	}

	fromBalance := k.Balance(ctx, id, from)
	if amount.GT(fromBalance) {
		return types.ErrFundsUnavailable.Wrapf("transfer %s of asset %d from %s, balance %s", amount, id, from, fromBalance)
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	remainder := fromBalance.Sub(amount)
	dust := math.ZeroInt()
	if remainder.LT(asset.MinBalance) {
		if preservation == types.Preserve {
			return types.ErrNotExpendable.Wrapf("sender %s would keep %s of asset %d", from, remainder, id)
		}
		dust, remainder = remainder, math.ZeroInt()
	}

	toBalance := k.Balance(ctx, id, to).Add(amount)
	if toBalance.LT(asset.MinBalance) {
		return types.ErrBelowMinimum.Wrapf("recipient %s would hold %s of asset %d", to, toBalance, id)
	}

	if dust.IsPositive() {
		asset.Supply = asset.Supply.Sub(dust)
		k.SetAsset(ctx, asset)
	}
	k.setBalance(ctx, id, from, remainder)
	k.setBalance(ctx, id, to, toBalance)
	return nil
}
