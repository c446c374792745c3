package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	// input validation
	ErrIdenticalAssets        = errors.Register(ModuleName, 1, "identical assets")
	ErrInvalidAmount          = errors.Register(ModuleName, 2, "invalid amount")
	ErrInvalidDesiredAmount   = errors.Register(ModuleName, 3, "desired amounts must be positive")
	ErrInvalidLiquidityAmount = errors.Register(ModuleName, 4, "liquidity amount must be positive")

	// state lookup
	ErrPoolNotFound                = errors.Register(ModuleName, 5, "pool not found")
	ErrAssetNotExists              = errors.Register(ModuleName, 6, "asset does not exist")
	ErrLiquidityPoolTokenNotExists = errors.Register(ModuleName, 7, "liquidity pool token does not exist")
	ErrAssetIdAlreadyTaken         = errors.Register(ModuleName, 8, "asset id already taken")
	ErrPoolExists                  = errors.Register(ModuleName, 9, "pool already exists")

	// economic bounds
	ErrInsufficientAmount                  = errors.Register(ModuleName, 10, "insufficient amount")
	ErrInsufficientLiquidity               = errors.Register(ModuleName, 11, "insufficient liquidity")
	ErrAmountLessThanMinimal               = errors.Register(ModuleName, 12, "remaining reserve less than minimal balance")
	ErrProvidedMinimumNotSufficientForSwap = errors.Register(ModuleName, 13, "provided minimum not sufficient for swap")
	ErrProvidedMaximumNotSufficientForSwap = errors.Register(ModuleName, 14, "provided maximum not sufficient for swap")
	ErrReserveIsZero                       = errors.Register(ModuleName, 15, "reserve is zero")

	// arithmetic
	ErrOverflow = errors.Register(ModuleName, 16, "arithmetic overflow")

	ErrAssetNotInPair = errors.Register(ModuleName, 17, "asset is not a member of the pair")
	ErrInvalidAddress = errors.Register(ModuleName, 18, "invalid address")
	ErrInvalidParams  = errors.Register(ModuleName, 19, "invalid params")
)
