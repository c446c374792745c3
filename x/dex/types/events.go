package types

// Event types for the DEX module
const (
	EventTypePoolCreated      = "pool_created"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwapped          = "swapped"
)

// Event attribute keys
const (
	AttributeKeyCreator      = "creator"
	AttributeKeySender       = "sender"
	AttributeKeyMintTo       = "mint_to"
	AttributeKeyAssetFirst   = "asset_first"
	AttributeKeyAssetSecond  = "asset_second"
	AttributeKeyClaimAsset   = "claim_asset"
	AttributeKeyAmountFirst  = "amount_first"
	AttributeKeyAmountSecond = "amount_second"
	AttributeKeyMinted       = "minted"
	AttributeKeyBurned       = "burned"
	AttributeKeyFee          = "fee"
	AttributeKeyAssetIn      = "asset_in"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAssetOut     = "asset_out"
	AttributeKeyAmountOut    = "amount_out"
)
