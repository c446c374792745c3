package types

import (
	"fmt"

	"cosmossdk.io/math"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
)

// MaxAmount is the widest amount a reserve, deposit or payout may take.
var MaxAmount = assetstypes.MaxBalance

// PoolInfo is the persisted state of one pair's pool. Reserves are in the
// pair's canonical orientation.
type PoolInfo struct {
	ClaimAsset    uint32   `json:"claim_asset"`
	ReserveFirst  math.Int `json:"reserve_first"`
	ReserveSecond math.Int `json:"reserve_second"`
}

// NewPoolInfo returns an empty pool that mints claimAsset.
func NewPoolInfo(claimAsset uint32) PoolInfo {
	return PoolInfo{
		ClaimAsset:    claimAsset,
		ReserveFirst:  math.ZeroInt(),
		ReserveSecond: math.ZeroInt(),
	}
}

// IsEmpty reports whether either reserve is zero
func (p PoolInfo) IsEmpty() bool {
	return p.ReserveFirst.IsZero() || p.ReserveSecond.IsZero()
}

// Reserves returns (reserveIn, reserveOut) for a trade whose input is the
// first member when inIsFirst is set.
func (p PoolInfo) Reserves(inIsFirst bool) (math.Int, math.Int) {
	if inIsFirst {
		return p.ReserveFirst, p.ReserveSecond
	}
	return p.ReserveSecond, p.ReserveFirst
}

// AddReserves returns a copy with both reserves increased.
func (p PoolInfo) AddReserves(first, second math.Int) (PoolInfo, error) {
	rf, err := checkedAdd(p.ReserveFirst, first)
	if err != nil {
		return p, err
	}
	rs, err := checkedAdd(p.ReserveSecond, second)
	if err != nil {
		return p, err
	}
	p.ReserveFirst, p.ReserveSecond = rf, rs
	return p, nil
}

// SubReserves returns a copy with both reserves decreased.
func (p PoolInfo) SubReserves(first, second math.Int) (PoolInfo, error) {
	rf, err := checkedSub(p.ReserveFirst, first)
	if err != nil {
		return p, err
	}
	rs, err := checkedSub(p.ReserveSecond, second)
	if err != nil {
		return p, err
	}
	p.ReserveFirst, p.ReserveSecond = rf, rs
	return p, nil
}

// ApplySwap returns a copy with amountIn added to the input side and amountOut
// taken from the output side.
func (p PoolInfo) ApplySwap(inIsFirst bool, amountIn, amountOut math.Int) (PoolInfo, error) {
	addFirst, addSecond := amountIn, math.ZeroInt()
	subFirst, subSecond := math.ZeroInt(), amountOut
	if !inIsFirst {
		addFirst, addSecond = addSecond, addFirst
		subFirst, subSecond = subSecond, subFirst
	}

	next, err := p.AddReserves(addFirst, addSecond)
	if err != nil {
		return p, err
	}
	return next.SubReserves(subFirst, subSecond)
}

// Validate performs stateless checks on stored pool state
func (p PoolInfo) Validate() error {
	for _, r := range []math.Int{p.ReserveFirst, p.ReserveSecond} {
		if r.IsNil() || r.IsNegative() || r.GT(MaxAmount) {
			return fmt.Errorf("reserve %v out of range", r)
		}
	}
	return nil
}

func checkedAdd(a, b math.Int) (math.Int, error) {
	sum := a.Add(b)
	if sum.GT(MaxAmount) {
		return math.ZeroInt(), ErrOverflow.Wrapf("%s + %s", a, b)
	}
	return sum, nil
}

func checkedSub(a, b math.Int) (math.Int, error) {
	if b.GT(a) {
		return math.ZeroInt(), ErrOverflow.Wrapf("%s - %s", a, b)
	}
	return a.Sub(b), nil
}
