package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePool creates an empty pool for a pair and originates its claim asset
type MsgCreatePool struct {
	Creator    string `json:"creator"`
	AssetA     uint32 `json:"asset_a"`
	AssetB     uint32 `json:"asset_b"`
	ClaimAsset uint32 `json:"claim_asset"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator string, assetA, assetB, claimAsset uint32) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:    creator,
		AssetA:     assetA,
		AssetB:     assetB,
		ClaimAsset: claimAsset,
	}
}

// GetSigners returns the accounts that must authorize the message
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes returns the canonical JSON of the message
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic runs stateless checks
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrapf(ErrIdenticalAssets, "asset %d", msg.AssetA)
	}

	if msg.ClaimAsset == msg.AssetA || msg.ClaimAsset == msg.AssetB {
		return sdkerrors.Wrapf(ErrAssetIdAlreadyTaken, "claim asset %d is a pool member", msg.ClaimAsset)
	}

	return nil
}
