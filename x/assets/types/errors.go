package types

import (
	"cosmossdk.io/errors"
)

// Asset ledger sentinel errors
var (
	ErrAssetNotFound     = errors.Register(ModuleName, 1, "asset does not exist")
	ErrAssetExists       = errors.Register(ModuleName, 2, "asset id already in use")
	ErrFundsUnavailable  = errors.Register(ModuleName, 3, "funds unavailable")
	ErrBelowMinimum      = errors.Register(ModuleName, 4, "balance would fall below the asset minimum")
	ErrOverflow          = errors.Register(ModuleName, 5, "amount overflow")
	ErrInvalidMinBalance = errors.Register(ModuleName, 6, "minimum balance must be positive")
	ErrInvalidAmount     = errors.Register(ModuleName, 7, "invalid amount")
	ErrNotExpendable     = errors.Register(ModuleName, 8, "transfer would reap a preserved account")
	ErrNotOwner          = errors.Register(ModuleName, 9, "signer is not the asset owner")
)
