package cmd

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

const (
	flagMinA   = "min-a"
	flagMinB   = "min-b"
	flagMintTo = "mint-to"
)

// PoolCmd returns the pool subcommands
func PoolCmd() *cobra.Command {
	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Liquidity pool subcommands",
	}

	poolCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdListPools(),
		CmdShowPool(),
		CmdPoolReserves(),
	)

	return poolCmd
}

func parsePairArgs(a, b string) (uint32, uint32, error) {
	x, err := parseAssetID(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseAssetID(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [asset-a] [asset-b] [claim-asset]",
		Short: "Create an empty pool for a pair",
		Long: `Create registers an empty pool for the pair and a fresh claim asset that
tracks shares of it. The sender pays the pool creation fee in the fee asset.

Example:
  $ ammd pool create 1 2 100 --from alice`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetA, assetB, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			claim, err := parseAssetID(args[2])
			if err != nil {
				return err
			}
			from, err := fromAccount(cmd)
			if err != nil {
				return err
			}

			msg := dextypes.NewMsgCreatePool(from.String(), assetA, assetB, claim)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var resp *dextypes.MsgCreatePoolResponse
			res, err := a.Exec(func(ctx sdk.Context) error {
				var execErr error
				resp, execErr = a.MsgServer.CreatePool(ctx, msg)
				return execErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, newTxOutput(res, resp))
		},
	}

	addFromFlag(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [asset-a] [asset-b] [desired-a] [desired-b]",
		Short: "Deposit liquidity into a pool",
		Long: `Add deposits up to the desired amounts at the pool's current ratio and mints
claim tokens to --mint-to (the sender by default). The first deposit sets the
ratio and locks a minimum amount of claim tokens in the pool.

Example:
  $ ammd pool add 1 2 10000 200 --min-a 9900 --min-b 198 --from alice`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetA, assetB, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			desiredA, err := parseAmount("desired-a", args[2])
			if err != nil {
				return err
			}
			desiredB, err := parseAmount("desired-b", args[3])
			if err != nil {
				return err
			}
			minA, err := amountFlag(cmd, flagMinA)
			if err != nil {
				return err
			}
			minB, err := amountFlag(cmd, flagMinB)
			if err != nil {
				return err
			}
			from, err := fromAccount(cmd)
			if err != nil {
				return err
			}
			mintTo := from
			if raw, _ := cmd.Flags().GetString(flagMintTo); raw != "" {
				if mintTo, err = ResolveAccount(raw); err != nil {
					return err
				}
			}

			msg := dextypes.NewMsgAddLiquidity(from.String(), assetA, assetB, desiredA, desiredB, minA, minB, mintTo.String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var resp *dextypes.MsgAddLiquidityResponse
			res, err := a.Exec(func(ctx sdk.Context) error {
				var execErr error
				resp, execErr = a.MsgServer.AddLiquidity(ctx, msg)
				return execErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, newTxOutput(res, resp))
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagMinA, "0", "minimum amount of asset-a to deposit")
	cmd.Flags().String(flagMinB, "0", "minimum amount of asset-b to deposit")
	cmd.Flags().String(flagMintTo, "", "account receiving the claim tokens (default: sender)")
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity from a pool
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [asset-a] [asset-b] [claim-amount]",
		Short: "Redeem claim tokens for a share of the reserves",
		Long: `Remove burns claim tokens, less the withdrawal fee which goes to the pool,
and pays out the proportional share of both reserves.

Example:
  $ ammd pool remove 1 2 500 --min-a 100 --min-b 2 --from alice`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetA, assetB, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			burn, err := parseAmount("claim-amount", args[2])
			if err != nil {
				return err
			}
			minA, err := amountFlag(cmd, flagMinA)
			if err != nil {
				return err
			}
			minB, err := amountFlag(cmd, flagMinB)
			if err != nil {
				return err
			}
			from, err := fromAccount(cmd)
			if err != nil {
				return err
			}

			msg := dextypes.NewMsgRemoveLiquidity(from.String(), assetA, assetB, burn, minA, minB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var resp *dextypes.MsgRemoveLiquidityResponse
			res, err := a.Exec(func(ctx sdk.Context) error {
				var execErr error
				resp, execErr = a.MsgServer.RemoveLiquidity(ctx, msg)
				return execErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, newTxOutput(res, resp))
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagMinA, "0", "minimum amount of asset-a to receive")
	cmd.Flags().String(flagMinB, "0", "minimum amount of asset-b to receive")
	return cmd
}

// CmdListPools lists every pool
func CmdListPools() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var views []dextypes.PoolView
			err = a.Query(func(ctx sdk.Context) error {
				views = a.DEXKeeper.PoolViews(ctx)
				return nil
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, map[string]interface{}{"pools": views})
		},
	}
}

// CmdShowPool shows one pool
func CmdShowPool() *cobra.Command {
	return &cobra.Command{
		Use:   "show [asset-a] [asset-b]",
		Short: "Show a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetA, assetB, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var view dextypes.PoolView
			err = a.Query(func(ctx sdk.Context) error {
				var qErr error
				view, qErr = a.DEXKeeper.PoolView(ctx, assetA, assetB)
				return qErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, view)
		},
	}
}

type reservesOutput struct {
	AssetA   uint32   `json:"asset_a"`
	AssetB   uint32   `json:"asset_b"`
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// CmdPoolReserves prints reserves in the order the assets are given
func CmdPoolReserves() *cobra.Command {
	return &cobra.Command{
		Use:   "reserves [asset-a] [asset-b]",
		Short: "Show a pool's reserves in argument order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetA, assetB, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := reservesOutput{AssetA: assetA, AssetB: assetB}
			err = a.Query(func(ctx sdk.Context) error {
				var qErr error
				out.ReserveA, out.ReserveB, qErr = a.DEXKeeper.GetReserves(ctx, assetA, assetB)
				return qErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, out)
		},
	}
}
