package cmd

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
)

const (
	flagMinBalance = "min-balance"
	flagSufficient = "sufficient"
)

// AssetCmd returns the asset ledger subcommands
func AssetCmd() *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Asset ledger subcommands",
	}

	assetCmd.AddCommand(
		CmdCreateAsset(),
		CmdMintAsset(),
		CmdAssetBalance(),
		CmdListAssets(),
	)

	return assetCmd
}

// CmdCreateAsset registers a new asset owned by --from
func CmdCreateAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [asset-id]",
		Short: "Create an asset owned by the sender",
		Long: `Create registers an asset id on the ledger. The sender becomes its owner and
is the only account allowed to mint it.

Example:
  $ ammd asset create 1 --min-balance 10 --from alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			id, err := parseAssetID(args[0])
			if err != nil {
				return err
			}
			owner, err := fromAccount(cmd)
			if err != nil {
				return err
			}
			minBalance, err := amountFlag(cmd, flagMinBalance)
			if err != nil {
				return err
			}
			sufficient, _ := cmd.Flags().GetBool(flagSufficient)

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var asset assetstypes.Asset
			res, err := a.Exec(func(ctx sdk.Context) error {
				if err := a.AssetsKeeper.Create(ctx, id, owner, sufficient, minBalance); err != nil {
					return err
				}
				asset, _ = a.AssetsKeeper.GetAsset(ctx, id)
				return nil
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, newTxOutput(res, asset))
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagMinBalance, "1", "smallest balance an account may hold")
	cmd.Flags().Bool(flagSufficient, true, "whether holding the asset keeps an account alive")
	return cmd
}

// CmdMintAsset mints units of an asset owned by --from
func CmdMintAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [asset-id] [to] [amount]",
		Short: "Mint units of an asset the sender owns",
		Example: `  $ ammd asset mint 1 bob 1000000 --from alice`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			id, err := parseAssetID(args[0])
			if err != nil {
				return err
			}
			to, err := ResolveAccount(args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			signer, err := fromAccount(cmd)
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var balance math.Int
			res, err := a.Exec(func(ctx sdk.Context) error {
				if err := a.AssetsKeeper.Issue(ctx, id, signer, to, amount); err != nil {
					return err
				}
				balance = a.AssetsKeeper.Balance(ctx, id, to)
				return nil
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, newTxOutput(res, balanceOutput{AssetID: id, Address: to.String(), Balance: balance}))
		},
	}

	addFromFlag(cmd)
	return cmd
}

type balanceOutput struct {
	AssetID uint32   `json:"asset_id"`
	Address string   `json:"address"`
	Balance math.Int `json:"balance"`
}

// CmdAssetBalance queries an account's balance
func CmdAssetBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [asset-id] [account]",
		Short: "Query the balance of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			id, err := parseAssetID(args[0])
			if err != nil {
				return err
			}
			addr, err := ResolveAccount(args[1])
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := balanceOutput{AssetID: id, Address: addr.String()}
			err = a.Query(func(ctx sdk.Context) error {
				if !a.AssetsKeeper.AssetExists(ctx, id) {
					return assetstypes.ErrAssetNotFound.Wrapf("asset %d", id)
				}
				out.Balance = a.AssetsKeeper.Balance(ctx, id, addr)
				return nil
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, out)
		},
	}
}

// CmdListAssets lists every asset on the ledger
func CmdListAssets() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all assets",
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

			var assets []assetstypes.Asset
			err = a.Query(func(ctx sdk.Context) error {
				assets = a.AssetsKeeper.GetAllAssets(ctx)
				return nil
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, c, map[string]interface{}{"assets": assets})
		},
	}
}
