package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/spf13/cobra"
)

const (
	flagMnemonicLength = "mnemonic-length"
	flagAccount        = "account"
	flagIndex          = "index"
)

// KeyOutput describes an account derived from a mnemonic
type KeyOutput struct {
	Address  string `json:"address"`
	PubKey   string `json:"pubkey"`
	HDPath   string `json:"hd_path"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// DeriveAccount derives the secp256k1 account at hdPath from a BIP39 mnemonic
func DeriveAccount(mnemonic, hdPath string) (KeyOutput, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return KeyOutput{}, errors.New("invalid mnemonic")
	}

	derived, err := hd.Secp256k1.Derive()(mnemonic, keyring.DefaultBIP39Passphrase, hdPath)
	if err != nil {
		return KeyOutput{}, fmt.Errorf("failed to derive key: %w", err)
	}
	pub := hd.Secp256k1.Generate()(derived).PubKey()

	return KeyOutput{
		Address: sdk.AccAddress(pub.Address()).String(),
		PubKey:  fmt.Sprintf("%X", pub.Bytes()),
		HDPath:  hdPath,
	}, nil
}

// NewMnemonic generates a 12 or 24 word mnemonic
func NewMnemonic(words int) (string, error) {
	var bits int
	switch words {
	case 12:
		bits = 128
	case 24:
		bits = 256
	default:
		return "", fmt.Errorf("mnemonic length must be 12 or 24 words, got %d", words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", errors.New("generated mnemonic failed validation")
	}
	return mnemonic, nil
}

func hdPathFromFlags(cmd *cobra.Command) (string, error) {
	account, err := cmd.Flags().GetUint32(flagAccount)
	if err != nil {
		return "", err
	}
	index, err := cmd.Flags().GetUint32(flagIndex)
	if err != nil {
		return "", err
	}
	return hd.CreateHDPath(sdk.GetConfig().GetCoinType(), account, index).String(), nil
}

func addHDPathFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32(flagAccount, 0, "account number for HD derivation")
	cmd.Flags().Uint32(flagIndex, 0, "address index number for HD derivation")
}

// NewAccountCmd generates a mnemonic and prints the address it controls.
// The address can be passed to --from like any other.
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a BIP39 mnemonic and derive its address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			words, err := cmd.Flags().GetInt(flagMnemonicLength)
			if err != nil {
				return err
			}
			hdPath, err := hdPathFromFlags(cmd)
			if err != nil {
				return err
			}

			mnemonic, err := NewMnemonic(words)
			if err != nil {
				return err
			}
			key, err := DeriveAccount(mnemonic, hdPath)
			if err != nil {
				return err
			}
			key.Mnemonic = mnemonic

			c.Logger.Info("account generated", "address", key.Address, "hd_path", hdPath)
			return printOutput(cmd, c, key)
		},
	}

	cmd.Flags().Int(flagMnemonicLength, 24, "mnemonic length (12 or 24 words)")
	addHDPathFlags(cmd)
	return cmd
}

// RecoverAccountCmd reads a mnemonic from stdin and prints its address
func RecoverAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Derive the address of an existing BIP39 mnemonic read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			hdPath, err := hdPathFromFlags(cmd)
			if err != nil {
				return err
			}

			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(line) == "" {
				return fmt.Errorf("failed to read mnemonic: %w", err)
			}
			key, err := DeriveAccount(line, hdPath)
			if err != nil {
				return err
			}
			return printOutput(cmd, c, key)
		},
	}

	addHDPathFlags(cmd)
	return cmd
}
