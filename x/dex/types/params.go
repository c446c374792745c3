package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default parameter values
const (
	DefaultFeePercent uint32 = 3
	DefaultFeeAsset   uint32 = 0
)

var (
	DefaultMinLiquidity         = math.NewInt(10)
	DefaultPoolCreationFee      = math.NewInt(100)
	DefaultClaimAssetMinBalance = math.NewInt(1)
)

// Params are the engine's economic constants. They are fixed at genesis.
type Params struct {
	// FeePercent is charged on swap input and on liquidity redemption.
	FeePercent uint32 `json:"fee_percent"`
	// MinLiquidity claim tokens are locked with the custodian on first deposit.
	MinLiquidity math.Int `json:"min_liquidity"`
	// PoolCreationFee of FeeAsset is charged to the pool creator.
	PoolCreationFee math.Int `json:"pool_creation_fee"`
	FeeAsset        uint32   `json:"fee_asset"`
	// ClaimAssetMinBalance is the minimum balance of every claim asset.
	ClaimAssetMinBalance math.Int `json:"claim_asset_min_balance"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		FeePercent:           DefaultFeePercent,
		MinLiquidity:         DefaultMinLiquidity,
		PoolCreationFee:      DefaultPoolCreationFee,
		FeeAsset:             DefaultFeeAsset,
		ClaimAssetMinBalance: DefaultClaimAssetMinBalance,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.FeePercent >= 100 {
		return ErrInvalidParams.Wrapf("fee percent must be below 100, got %d", p.FeePercent)
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() || p.MinLiquidity.GT(MaxAmount) {
		return ErrInvalidParams.Wrap("min liquidity out of range")
	}
	if p.PoolCreationFee.IsNil() || p.PoolCreationFee.IsNegative() || p.PoolCreationFee.GT(MaxAmount) {
		return ErrInvalidParams.Wrap("pool creation fee out of range")
	}
	if p.ClaimAssetMinBalance.IsNil() || !p.ClaimAssetMinBalance.IsPositive() {
		return ErrInvalidParams.Wrap("claim asset min balance must be positive")
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("fee=%d%% min_liquidity=%s creation_fee=%s(asset %d) claim_min=%s",
		p.FeePercent, p.MinLiquidity, p.PoolCreationFee, p.FeeAsset, p.ClaimAssetMinBalance)
}
