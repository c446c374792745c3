package types

import (
	"encoding/binary"
	"fmt"
)

// AssetPair is an unordered pair of distinct assets stored in canonical order,
// First < Second. The orientation decides which reserve is which.
type AssetPair struct {
	First  uint32 `json:"first"`
	Second uint32 `json:"second"`
}

// NewAssetPair canonicalizes two asset ids into a pair.
func NewAssetPair(a, b uint32) (AssetPair, error) {
	if a == b {
		return AssetPair{}, ErrIdenticalAssets.Wrapf("asset %d", a)
	}
	if a > b {
		a, b = b, a
	}
	return AssetPair{First: a, Second: b}, nil
}

// Key returns the big-endian encoding First‖Second. Byte order equals pair order.
func (p AssetPair) Key() []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint32(bz[:4], p.First)
	binary.BigEndian.PutUint32(bz[4:], p.Second)
	return bz
}

// PairFromKey decodes a key produced by Key.
func PairFromKey(bz []byte) (AssetPair, error) {
	if len(bz) != 8 {
		return AssetPair{}, fmt.Errorf("pair key must be 8 bytes, got %d", len(bz))
	}
	return NewAssetPair(binary.BigEndian.Uint32(bz[:4]), binary.BigEndian.Uint32(bz[4:]))
}

// Compare orders pairs by First, then Second.
func (p AssetPair) Compare(o AssetPair) int {
	switch {
	case p.First < o.First:
		return -1
	case p.First > o.First:
		return 1
	case p.Second < o.Second:
		return -1
	case p.Second > o.Second:
		return 1
	}
	return 0
}

// Contains reports whether id is one of the pair's members
func (p AssetPair) Contains(id uint32) bool {
	return id == p.First || id == p.Second
}

// Orient reports whether assetIn is the pair's first member.
func (p AssetPair) Orient(assetIn uint32) (inIsFirst bool, err error) {
	switch assetIn {
	case p.First:
		return true, nil
	case p.Second:
		return false, nil
	}
	return false, ErrAssetNotInPair.Wrapf("asset %d not in %s", assetIn, p)
}

func (p AssetPair) String() string {
	return fmt.Sprintf("%d/%d", p.First, p.Second)
}
