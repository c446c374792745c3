package keeper

import (
	"fmt"
	"math/big"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/pawdex/x/dex/types"
)

// Operation labels
const (
	opCreatePool      = "create_pool"
	opAddLiquidity    = "add_liquidity"
	opRemoveLiquidity = "remove_liquidity"
	opSwapExactIn     = "swap_exact_in"
	opSwapExactOut    = "swap_exact_out"
)

// DEXMetrics holds all Prometheus metrics for the DEX module
type DEXMetrics struct {
	// Operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec

	// Swap metrics
	SwapVolume *prometheus.CounterVec

	// Pool metrics
	PoolsCreated prometheus.Counter
	PoolReserves *prometheus.GaugeVec
}

var (
	dexMetricsOnce sync.Once
	dexMetrics     *DEXMetrics
)

// NewDEXMetrics creates and registers DEX metrics (singleton pattern)
func NewDEXMetrics() *DEXMetrics {
	dexMetricsOnce.Do(func() {
		dexMetrics = &DEXMetrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawdex",
					Subsystem: "dex",
					Name:      "operations_total",
					Help:      "Total number of engine operations by outcome",
				},
				[]string{"operation", "status"},
			),
			OperationFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawdex",
					Subsystem: "dex",
					Name:      "operation_failures_total",
					Help:      "Failed engine operations by error codespace and code",
				},
				[]string{"operation", "codespace", "code"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawdex",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total swap volume in base units",
				},
				[]string{"asset", "side"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pawdex",
					Subsystem: "dex",
					Name:      "pools_created_total",
					Help:      "Total number of pools created",
				},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pawdex",
					Subsystem: "dex",
					Name:      "pool_reserves",
					Help:      "Current pool reserves in base units",
				},
				[]string{"pair", "asset"},
			),
		}
	})
	return dexMetrics
}

// observeReserves publishes a pool's reserves
func (m *DEXMetrics) observeReserves(pair types.AssetPair, pool types.PoolInfo) {
	m.PoolReserves.WithLabelValues(pair.String(), fmt.Sprintf("%d", pair.First)).Set(toFloat(pool.ReserveFirst))
	m.PoolReserves.WithLabelValues(pair.String(), fmt.Sprintf("%d", pair.Second)).Set(toFloat(pool.ReserveSecond))
}

// recordOp counts an operation outcome
func (k Keeper) recordOp(op string, err error) {
	if k.metrics == nil {
		return
	}
	if err == nil {
		k.metrics.OperationsTotal.WithLabelValues(op, "success").Inc()
		return
	}

	k.metrics.OperationsTotal.WithLabelValues(op, "failure").Inc()
	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	k.metrics.OperationFailures.WithLabelValues(op, codespace, fmt.Sprintf("%d", code)).Inc()
}

func toFloat(x math.Int) float64 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()
	return f
}
