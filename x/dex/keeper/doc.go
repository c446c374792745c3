// Package keeper implements the DEX module keeper.
//
// The DEX module is a constant-product automated market maker over the
// fungible assets of the assets module. Each unordered pair of distinct
// assets has at most one pool; its reserves are held by a custodian account
// derived from the pair, and liquidity shares are tracked as a dedicated
// claim asset created with the pool.
//
// # Core Functionality
//
// Pools: CreatePool registers an empty pool, charges the creation fee and
// originates the claim asset. The first deposit sets the price and locks
// MinLiquidity claim tokens with the custodian.
//
// Liquidity: AddLiquidity deposits at the current reserve ratio and mints
// claim tokens; RemoveLiquidity burns them and pays out the proportional
// share of both reserves, less the redemption fee.
//
// Swaps: SwapExactIn and SwapExactOut trade against the reserves with the
// fee taken from the input. GetAmountOut, GetAmountIn and Quote are the
// pure pricing functions behind them.
//
// # Atomicity
//
// Every state-changing operation runs on a cached branch of the context
// under a per-pair lock. The branch is committed, and the operation's event
// emitted, only if every step succeeds.
//
// # Usage Patterns
//
// Creating and seeding a pool:
//
//	pair, err := keeper.CreatePool(ctx, creator, 1, 2, 100)
//	res, err := keeper.AddLiquidity(ctx, provider, 1, 2, desiredA, desiredB, minA, minB, provider)
//
// Executing a swap:
//
//	res, err := keeper.SwapExactIn(ctx, trader, 1, 2, amountIn, minAmountOut)
//
// # Metrics
//
// The keeper exposes Prometheus metrics for operations, failures by error
// code, swap volume and pool reserves via DEXMetrics.
package keeper
