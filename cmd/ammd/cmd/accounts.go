package cmd

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// ResolveAccount accepts a bech32 address or an account name. A name maps to
// the address hash of its bytes, so the same name is the same account in
// every home.
func ResolveAccount(s string) (sdk.AccAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty account")
	}

	addr, err := sdk.AccAddressFromBech32(s)
	if err == nil {
		return addr, nil
	}
	if strings.HasPrefix(s, sdk.GetConfig().GetBech32AccountAddrPrefix()+"1") {
		return nil, fmt.Errorf("invalid address %s: %w", s, err)
	}
	return sdk.AccAddress(crypto.AddressHash([]byte(s))), nil
}

func fromAccount(cmd *cobra.Command) (sdk.AccAddress, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return nil, err
	}
	return ResolveAccount(from)
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagFrom, "", "account name or address acting as the sender")
	_ = cmd.MarkFlagRequired(flagFrom)
}

func parseAssetID(s string) (uint32, error) {
	id, err := cast.ToUint32E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid asset id %q: %w", s, err)
	}
	return id, nil
}

func parseAmount(name, s string) (math.Int, error) {
	amt, ok := math.NewIntFromString(s)
	if !ok || amt.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be a non-negative integer)", name, s)
	}
	return amt, nil
}

func amountFlag(cmd *cobra.Command, name string) (math.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.Int{}, err
	}
	return parseAmount(name, raw)
}

// AccountCmd prints the address an account name resolves to
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account [name-or-address]",
		Short: "Show the address of a named account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			addr, err := ResolveAccount(args[0])
			if err != nil {
				return err
			}
			return printOutput(cmd, c, map[string]string{"name": args[0], "address": addr.String()})
		},
	}

	cmd.AddCommand(NewAccountCmd(), RecoverAccountCmd())
	return cmd
}
