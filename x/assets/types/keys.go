package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "assets"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	AssetKeyPrefix   = []byte{0x01} // prefix for asset metadata
	BalanceKeyPrefix = []byte{0x02} // prefix for (asset, account) balances
)

// AssetIDBytes encodes an asset id big-endian so store order equals numeric order.
func AssetIDBytes(id uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	return bz
}

// AssetKey returns the store key for an asset's metadata
func AssetKey(id uint32) []byte {
	return append(append([]byte{}, AssetKeyPrefix...), AssetIDBytes(id)...)
}

// BalancesPrefix returns the prefix under which all balances of an asset live
func BalancesPrefix(id uint32) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), AssetIDBytes(id)...)
}

// BalanceKey returns the store key for an account balance of an asset
func BalanceKey(id uint32, addr sdk.AccAddress) []byte {
	return append(BalancesPrefix(id), address.MustLengthPrefix(addr)...)
}

// AddressFromBalanceKey extracts the account from a key relative to BalancesPrefix.
func AddressFromBalanceKey(key []byte) sdk.AccAddress {
	if len(key) == 0 {
		return nil
	}
	n := int(key[0])
	return sdk.AccAddress(key[1 : 1+n])
}
