package cmd

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawdex/internal/gateway"
	dexkeeper "github.com/paw-chain/pawdex/x/dex/keeper"
)

// QuoteOutput is printed by the quote subcommands
type QuoteOutput struct {
	Mode     string   `json:"mode"`
	AssetIn  uint32   `json:"asset_in"`
	AssetOut uint32   `json:"asset_out"`
	Amount   math.Int `json:"amount"`
	Quote    math.Int `json:"quote"`
}

type quoteFunc func(k dexkeeper.Keeper, ctx sdk.Context, in, out uint32, amount math.Int) (math.Int, error)

// QuoteCmd returns the read-only pricing subcommands
func QuoteCmd() *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Price trades against the current reserves",
	}

	quoteCmd.AddCommand(
		newQuoteCmd(gateway.ModeExactFor, "Price amount of the pair's lower-id asset in the other, at the pool ratio (no fee)",
			func(k dexkeeper.Keeper, ctx sdk.Context, in, out uint32, amount math.Int) (math.Int, error) {
				return k.QuoteExactFor(ctx, in, out, amount)
			}),
		newQuoteCmd(gateway.ModeForExact, "Price amount of the pair's higher-id asset in the other, at the pool ratio (no fee)",
			func(k dexkeeper.Keeper, ctx sdk.Context, in, out uint32, amount math.Int) (math.Int, error) {
				return k.QuoteForExact(ctx, in, out, amount)
			}),
		newQuoteCmd(gateway.ModeAmountOut, "What selling amount of asset-in would pay out, fee included",
			func(k dexkeeper.Keeper, ctx sdk.Context, in, out uint32, amount math.Int) (math.Int, error) {
				return k.SimulateExactIn(ctx, in, out, amount)
			}),
		newQuoteCmd(gateway.ModeAmountIn, "What buying amount of asset-out would cost, fee included",
			func(k dexkeeper.Keeper, ctx sdk.Context, in, out uint32, amount math.Int) (math.Int, error) {
				return k.SimulateExactOut(ctx, in, out, amount)
			}),
	)

	return quoteCmd
}

func newQuoteCmd(mode, short string, quote quoteFunc) *cobra.Command {
	return &cobra.Command{
		Use:   mode + " [asset-in] [asset-out] [amount]",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			in, out, err := parsePairArgs(args[0], args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			result := QuoteOutput{Mode: mode, AssetIn: in, AssetOut: out, Amount: amount}
			err = a.Query(func(ctx sdk.Context) error {
				var qErr error
				result.Quote, qErr = quote(a.DEXKeeper, ctx, in, out, amount)
				return qErr
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, result)
		},
	}
}
