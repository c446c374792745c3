package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel/attribute"

	"github.com/paw-chain/pawdex/internal/telemetry"
	"github.com/paw-chain/pawdex/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func pairAttrs(a, b uint32) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("dex.asset_a", int64(a)),
		attribute.Int64("dex.asset_b", int64(b)),
	}
}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (_ *types.MsgCreatePoolResponse, err error) {
	goCtx, span := telemetry.StartModuleSpan(goCtx, types.ModuleName, "create_pool", pairAttrs(msg.AssetA, msg.AssetB)...)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Validate message
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	// Parse creator address
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	pair, err := ms.Keeper.CreatePool(goCtx, creator, msg.AssetA, msg.AssetB, msg.ClaimAsset)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{Pair: pair}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (_ *types.MsgAddLiquidityResponse, err error) {
	goCtx, span := telemetry.StartModuleSpan(goCtx, types.ModuleName, "add_liquidity", pairAttrs(msg.AssetA, msg.AssetB)...)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Validate message
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid sender address: %w", err)
	}
	mintTo, err := sdk.AccAddressFromBech32(msg.MintTo)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid mint_to address: %w", err)
	}

	result, err := ms.Keeper.AddLiquidity(goCtx, sender, msg.AssetA, msg.AssetB, msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB, mintTo)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{AddLiquidityResult: result}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (_ *types.MsgRemoveLiquidityResponse, err error) {
	goCtx, span := telemetry.StartModuleSpan(goCtx, types.ModuleName, "remove_liquidity", pairAttrs(msg.AssetA, msg.AssetB)...)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Validate message
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid sender address: %w", err)
	}

	result, err := ms.Keeper.RemoveLiquidity(goCtx, sender, msg.AssetA, msg.AssetB, msg.Burn, msg.MinA, msg.MinB)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{RemoveLiquidityResult: result}, nil
}

// SwapExactIn handles exact-input swaps
func (ms msgServer) SwapExactIn(goCtx context.Context, msg *types.MsgSwapExactIn) (_ *types.MsgSwapResponse, err error) {
	goCtx, span := telemetry.StartModuleSpan(goCtx, types.ModuleName, "swap_exact_in", pairAttrs(msg.AssetIn, msg.AssetOut)...)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Validate message
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactIn: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: invalid sender address: %w", err)
	}

	result, err := ms.Keeper.SwapExactIn(goCtx, sender, msg.AssetIn, msg.AssetOut, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	return &types.MsgSwapResponse{SwapResult: result}, nil
}

// SwapExactOut handles exact-output swaps
func (ms msgServer) SwapExactOut(goCtx context.Context, msg *types.MsgSwapExactOut) (_ *types.MsgSwapResponse, err error) {
	goCtx, span := telemetry.StartModuleSpan(goCtx, types.ModuleName, "swap_exact_out", pairAttrs(msg.AssetIn, msg.AssetOut)...)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Validate message
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactOut: validate: %w", err)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: invalid sender address: %w", err)
	}

	result, err := ms.Keeper.SwapExactOut(goCtx, sender, msg.AssetIn, msg.AssetOut, msg.AmountOut, msg.MaxAmountIn)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	return &types.MsgSwapResponse{SwapResult: result}, nil
}
