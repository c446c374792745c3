package cmd

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

const (
	flagMinOut = "min-out"
	flagMaxIn  = "max-in"
)

// SwapCmd returns the swap subcommands
func SwapCmd() *cobra.Command {
	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap one asset for another through its pool",
	}

	swapCmd.AddCommand(
		CmdSwapExactIn(),
		CmdSwapExactOut(),
	)

	return swapCmd
}

// CmdSwapExactIn sells an exact amount
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact-in [asset-in] [asset-out] [amount-in]",
		Short: "Sell exactly amount-in for at least --min-out",
		Long: `Sell exactly amount-in of asset-in. The swap fails if it would pay out less
than --min-out of asset-out.

Example:
  $ ammd swap exact-in 1 2 1000 --min-out 19 --from bob`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetIn, assetOut, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			amountIn, err := parseAmount("amount-in", args[2])
			if err != nil {
				return err
			}
			minOut, err := amountFlag(cmd, flagMinOut)
			if err != nil {
				return err
			}
			from, err := fromAccount(cmd)
			if err != nil {
				return err
			}

			msg := dextypes.NewMsgSwapExactIn(from.String(), assetIn, assetOut, amountIn, minOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return execSwap(cmd, c, func(ctx sdk.Context, ms dextypes.MsgServer) (*dextypes.MsgSwapResponse, error) {
				return ms.SwapExactIn(ctx, msg)
			})
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagMinOut, "1", "smallest acceptable amount of asset-out")
	return cmd
}

// CmdSwapExactOut buys an exact amount
func CmdSwapExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact-out [asset-in] [asset-out] [amount-out]",
		Short: "Buy exactly amount-out for at most --max-in",
		Long: `Buy exactly amount-out of asset-out. The swap fails if it would cost more
than --max-in of asset-in.

Example:
  $ ammd swap exact-out 1 2 20 --max-in 1100 --from bob`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			assetIn, assetOut, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			amountOut, err := parseAmount("amount-out", args[2])
			if err != nil {
				return err
			}
			maxIn, err := amountFlag(cmd, flagMaxIn)
			if err != nil {
				return err
			}
			from, err := fromAccount(cmd)
			if err != nil {
				return err
			}

			msg := dextypes.NewMsgSwapExactOut(from.String(), assetIn, assetOut, amountOut, maxIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return execSwap(cmd, c, func(ctx sdk.Context, ms dextypes.MsgServer) (*dextypes.MsgSwapResponse, error) {
				return ms.SwapExactOut(ctx, msg)
			})
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagMaxIn, "", "largest acceptable amount of asset-in")
	_ = cmd.MarkFlagRequired(flagMaxIn)
	return cmd
}

func execSwap(cmd *cobra.Command, c *cliContext, swap func(sdk.Context, dextypes.MsgServer) (*dextypes.MsgSwapResponse, error)) error {
	a, _, cleanup, err := c.openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var resp *dextypes.MsgSwapResponse
	res, err := a.Exec(func(ctx sdk.Context) error {
		var execErr error
		resp, execErr = swap(ctx, a.MsgServer)
		return execErr
	})
	if err != nil {
		return err
	}
	return printOutput(cmd, c, newTxOutput(res, resp))
}
