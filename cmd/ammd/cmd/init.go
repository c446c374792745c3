package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawdex/internal/app"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

const (
	flagNativeOwner = "native-owner"
	flagFeePercent  = "fee-percent"
	flagGenesis     = "genesis"
	flagOverwrite   = "overwrite"
)

// InitOutput is printed by ammd init
type InitOutput struct {
	Home        string `json:"home"`
	Genesis     string `json:"genesis"`
	Height      int64  `json:"height"`
	AppHash     string `json:"app_hash"`
	NativeOwner string `json:"native_owner,omitempty"`
}

// InitCmd writes config.toml and genesis.json and commits genesis
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the home directory and commit genesis",
		Long: `Initialize writes config.toml and genesis.json under --home and commits the
genesis state as height 1.

Without --genesis the ledger holds only the native fee asset 0, owned by
--native-owner so that account can mint fee funds.

Example:
  $ ammd init --native-owner treasury --fee-percent 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}

			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			dataDir := filepath.Join(c.Home, "data")
			if _, err := os.Stat(dataDir); err == nil {
				if !overwrite {
					return fmt.Errorf("%s already holds state; pass --%s to reset it", c.Home, flagOverwrite)
				}
				if err := os.RemoveAll(dataDir); err != nil {
					return fmt.Errorf("failed to reset data: %w", err)
				}
			}
			if err := os.MkdirAll(c.Home, 0o750); err != nil {
				return fmt.Errorf("failed to create home: %w", err)
			}

			configPath := filepath.Join(c.Home, configFileName)
			if err := c.viper.SafeWriteConfigAs(configPath); err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if !errors.As(err, &exists) {
					return fmt.Errorf("failed to write config: %w", err)
				}
			}

			genesis, owner, err := buildGenesis(cmd)
			if err != nil {
				return err
			}
			if err := genesis.Validate(app.MakeLegacyAmino()); err != nil {
				return fmt.Errorf("invalid genesis: %w", err)
			}
			genesisPath := filepath.Join(c.Home, genesisFileName)
			if err := app.SaveGenesis(genesisPath, genesis); err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.InitChain(genesis)
			if err != nil {
				return err
			}

			out := InitOutput{
				Home:    c.Home,
				Genesis: genesisPath,
				Height:  res.Height,
				AppHash: fmt.Sprintf("%X", res.AppHash),
			}
			if owner != nil {
				out.NativeOwner = owner.String()
			}
			return printOutput(cmd, c, out)
		},
	}

	cmd.Flags().String(flagNativeOwner, "treasury", "account that owns the native fee asset")
	cmd.Flags().Uint32(flagFeePercent, dextypes.DefaultFeePercent, "swap and withdrawal fee percent")
	cmd.Flags().String(flagGenesis, "", "import an existing genesis file instead of the default")
	cmd.Flags().Bool(flagOverwrite, false, "discard existing state")
	return cmd
}

// buildGenesis loads --genesis or builds the default with the flag overrides
func buildGenesis(cmd *cobra.Command) (app.GenesisState, sdk.AccAddress, error) {
	cdc := app.MakeLegacyAmino()

	if path, _ := cmd.Flags().GetString(flagGenesis); path != "" {
		genesis, err := app.LoadGenesis(path)
		return genesis, nil, err
	}

	genesis := app.NewDefaultGenesisState(cdc)
	assetsGenesis, dexGenesis, err := genesis.Modules(cdc)
	if err != nil {
		return nil, nil, err
	}

	ownerName, _ := cmd.Flags().GetString(flagNativeOwner)
	owner, err := ResolveAccount(ownerName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --%s: %w", flagNativeOwner, err)
	}
	for i := range assetsGenesis.Assets {
		if assetsGenesis.Assets[i].Id == app.NativeAssetID {
			assetsGenesis.Assets[i].Owner = owner
		}
	}

	dexGenesis.Params.FeePercent, err = cmd.Flags().GetUint32(flagFeePercent)
	if err != nil {
		return nil, nil, err
	}

	genesis[assetstypes.ModuleName] = cdc.MustMarshalJSON(assetsGenesis)
	genesis[dextypes.ModuleName] = cdc.MustMarshalJSON(dexGenesis)
	return genesis, owner, nil
}
