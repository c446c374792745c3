package types

import (
	"cosmossdk.io/math"
)

// PoolView is a pool as presented to readers, with its custodian and claim issuance.
type PoolView struct {
	Pair          AssetPair `json:"pair"`
	ClaimAsset    uint32    `json:"claim_asset"`
	ReserveFirst  math.Int  `json:"reserve_first"`
	ReserveSecond math.Int  `json:"reserve_second"`
	Custodian     string    `json:"custodian"`
	Issuance      math.Int  `json:"issuance"`
}
