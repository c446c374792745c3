package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/internal/app"
)

func TestResolveAccount(t *testing.T) {
	app.SetConfig()

	alice, err := ResolveAccount("alice")
	require.NoError(t, err)
	require.Len(t, alice, 20)

	again, err := ResolveAccount("  alice ")
	require.NoError(t, err)
	require.Equal(t, alice, again)

	bob, err := ResolveAccount("bob")
	require.NoError(t, err)
	require.NotEqual(t, alice, bob)

	byAddr, err := ResolveAccount(alice.String())
	require.NoError(t, err)
	require.Equal(t, alice, byAddr)

	_, err = ResolveAccount("paw1notanaddress")
	require.Error(t, err)

	_, err = ResolveAccount("")
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	amt, err := parseAmount("amount", "340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.Equal(t, 128, amt.BigInt().BitLen())

	_, err = parseAmount("amount", "-1")
	require.Error(t, err)
	_, err = parseAmount("amount", "1.5")
	require.Error(t, err)

	_, err = parseAssetID("4294967296")
	require.Error(t, err)
	id, err := parseAssetID("42")
	require.NoError(t, err)
	require.Equal(t, uint32(42), id)
}

func TestNewMnemonic_Lengths(t *testing.T) {
	for _, words := range []int{12, 24} {
		mnemonic, err := NewMnemonic(words)
		require.NoError(t, err)
		require.Len(t, strings.Fields(mnemonic), words)
	}

	_, err := NewMnemonic(13)
	require.Error(t, err)
}

func TestDeriveAccount(t *testing.T) {
	app.SetConfig()

	mnemonic, err := NewMnemonic(24)
	require.NoError(t, err)

	first, err := DeriveAccount(mnemonic, "m/44'/118'/0'/0/0")
	require.NoError(t, err)
	again, err := DeriveAccount("  "+strings.ReplaceAll(mnemonic, " ", "  ")+"\n", "m/44'/118'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, first, again)

	second, err := DeriveAccount(mnemonic, "m/44'/118'/0'/0/1")
	require.NoError(t, err)
	require.NotEqual(t, first.Address, second.Address)

	addr, err := ResolveAccount(first.Address)
	require.NoError(t, err)
	require.Equal(t, first.Address, addr.String())

	_, err = DeriveAccount("not a valid mnemonic", "m/44'/118'/0'/0/0")
	require.Error(t, err)
}

func TestCLI_AccountNewAndRecover(t *testing.T) {
	home := t.TempDir()

	var created KeyOutput
	decode(t, mustRun(t, home, "account", "new", "--mnemonic-length", "12"), &created)
	require.Len(t, strings.Fields(created.Mnemonic), 12)
	require.NotEmpty(t, created.Address)

	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader(created.Mnemonic + "\n"))
	root.SetArgs([]string{"account", "recover", "--home", home, "--log-level", "error"})
	require.NoError(t, root.Execute())

	var recovered KeyOutput
	decode(t, stdout.String(), &recovered)
	require.Equal(t, created.Address, recovered.Address)
	require.Equal(t, created.PubKey, recovered.PubKey)
	require.Empty(t, recovered.Mnemonic)

	_, err := run(t, home, "account", "new", "--mnemonic-length", "15")
	require.Error(t, err)

	// plain names still resolve through the parent command
	var named map[string]string
	decode(t, mustRun(t, home, "account", "alice"), &named)
	require.Equal(t, "alice", named["name"])
}
