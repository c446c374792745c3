package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// Overflow-checked arithmetic shared by the liquidity and swap engines.
// Intermediates are unbounded big.Ints; every result must fit types.MaxAmount.

var maxAmountBig = types.MaxAmount.BigInt()

// MulDiv returns floor(a*b/c).
func MulDiv(a, b, c math.Int) (math.Int, error) {
	return mulDivN([]math.Int{a, b}, []math.Int{c})
}

// PoolFee returns floor(amount*feePercent/100).
func PoolFee(amount math.Int, feePercent uint32) math.Int {
	fee := new(big.Int).Mul(amount.BigInt(), big.NewInt(int64(feePercent)))
	return math.NewIntFromBigInt(fee.Quo(fee, big.NewInt(100)))
}

// IntegerSqrt returns the largest r with r*r <= x.
func IntegerSqrt(x math.Int) (math.Int, error) {
	if x.IsNil() || x.IsNegative() {
		return math.ZeroInt(), types.ErrOverflow.Wrap("square root of a negative number")
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt())), nil
}

// SafeAdd adds two amounts, failing when the sum leaves the amount range
func SafeAdd(a, b math.Int) (math.Int, error) {
	if err := checkOperands(a, b); err != nil {
		return math.ZeroInt(), err
	}
	return fitAmount(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// SafeSub subtracts b from a, failing on underflow
func SafeSub(a, b math.Int) (math.Int, error) {
	if err := checkOperands(a, b); err != nil {
		return math.ZeroInt(), err
	}
	if a.LT(b) {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("underflow: %s - %s", a, b)
	}
	return a.Sub(b), nil
}

// mulDivN returns floor(prod(nums)/prod(dens)).
func mulDivN(nums, dens []math.Int) (math.Int, error) {
	if err := checkOperands(append(append([]math.Int{}, nums...), dens...)...); err != nil {
		return math.ZeroInt(), err
	}

	num := big.NewInt(1)
	for _, n := range nums {
		num.Mul(num, n.BigInt())
	}
	den := big.NewInt(1)
	for _, d := range dens {
		den.Mul(den, d.BigInt())
	}
	if den.Sign() == 0 {
		return math.ZeroInt(), types.ErrOverflow.Wrap("division by zero")
	}

	return fitAmount(num.Quo(num, den))
}

// positive reports whether x is set and strictly positive
func positive(x math.Int) bool {
	return !x.IsNil() && x.IsPositive()
}

func checkOperands(xs ...math.Int) error {
	for _, x := range xs {
		if x.IsNil() || x.IsNegative() || x.GT(types.MaxAmount) {
			return types.ErrOverflow.Wrapf("operand %v outside amount range", x)
		}
	}
	return nil
}

func fitAmount(x *big.Int) (math.Int, error) {
	if x.Cmp(maxAmountBig) > 0 {
		return math.ZeroInt(), types.ErrOverflow.Wrap("result exceeds maximum amount")
	}
	return math.NewIntFromBigInt(x), nil
}
