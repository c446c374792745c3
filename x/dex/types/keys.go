package types

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix = []byte{0x01} // prefix for pool state, keyed by AssetPair.Key()
	ParamsKey     = []byte{0x02} // key for module parameters
)

// PoolKey returns the store key for a pool
func PoolKey(pair AssetPair) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), pair.Key()...)
}
