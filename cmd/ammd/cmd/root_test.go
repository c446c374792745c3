package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/internal/app"
	"github.com/paw-chain/pawdex/internal/eventlog"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

type txResult struct {
	Height int64           `json:"height"`
	Result json.RawMessage `json:"result"`
	Events []EventView     `json:"events"`
}

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--home", home, "--log-level", "error"))
	err := root.Execute()
	return stdout.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := run(t, home, args...)
	require.NoError(t, err, "ammd %v", args)
	return out
}

func decode(t *testing.T, out string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func TestCLI_EndToEnd(t *testing.T) {
	home := t.TempDir()

	var initOut InitOutput
	decode(t, mustRun(t, home, "init"), &initOut)
	require.Equal(t, int64(1), initOut.Height)
	treasury, err := ResolveAccount("treasury")
	require.NoError(t, err)
	require.Equal(t, treasury.String(), initOut.NativeOwner)

	_, err = run(t, home, "init")
	require.ErrorContains(t, err, "already holds state")

	for _, id := range []string{"1", "2"} {
		mustRun(t, home, "asset", "create", id, "--from", "alice")
		mustRun(t, home, "asset", "mint", id, "alice", "1000000", "--from", "alice")
	}
	mustRun(t, home, "asset", "mint", "2", "bob", "1000", "--from", "alice")
	mustRun(t, home, "asset", "mint", "0", "alice", "1000", "--from", "treasury")

	// only the owner may mint
	_, err = run(t, home, "asset", "mint", "1", "bob", "5", "--from", "bob")
	require.Error(t, err)

	var created txResult
	decode(t, mustRun(t, home, "pool", "create", "2", "1", "100", "--from", "alice"), &created)
	require.Equal(t, dextypes.EventTypePoolCreated, created.Events[0].Type)

	var added txResult
	decode(t, mustRun(t, home, "pool", "add", "1", "2", "10000", "200", "--from", "alice"), &added)
	var deposit dextypes.AddLiquidityResult
	decode(t, string(added.Result), &deposit)
	require.True(t, deposit.Minted.Equal(math.NewInt(1404)), "minted %s", deposit.Minted)

	var quote QuoteOutput
	decode(t, mustRun(t, home, "quote", "exact-for", "1", "2", "3000"), &quote)
	require.True(t, quote.Quote.Equal(math.NewInt(60)), "quote %s", quote.Quote)

	var swapped txResult
	decode(t, mustRun(t, home, "swap", "exact-in", "2", "1", "10", "--from", "bob"), &swapped)
	var swap dextypes.SwapResult
	decode(t, string(swapped.Result), &swap)
	require.True(t, swap.AmountOut.Equal(math.NewInt(462)), "out %s", swap.AmountOut)

	var reserves reservesOutput
	decode(t, mustRun(t, home, "pool", "reserves", "1", "2"), &reserves)
	require.True(t, reserves.ReserveA.Equal(math.NewInt(9538)), "reserve a %s", reserves.ReserveA)
	require.True(t, reserves.ReserveB.Equal(math.NewInt(210)), "reserve b %s", reserves.ReserveB)

	// slippage bound rejects and leaves state untouched
	_, err = run(t, home, "swap", "exact-in", "2", "1", "10", "--min-out", "1000", "--from", "bob")
	require.Error(t, err)
	decode(t, mustRun(t, home, "pool", "reserves", "2", "1"), &reserves)
	require.True(t, reserves.ReserveA.Equal(math.NewInt(210)))

	var check struct {
		Invariants []app.InvariantResult `json:"invariants"`
	}
	decode(t, mustRun(t, home, "check"), &check)
	require.Len(t, check.Invariants, 3)
	for _, res := range check.Invariants {
		require.False(t, res.Broken, res.Msg)
	}

	var events struct {
		Events []eventlog.Record `json:"events"`
	}
	decode(t, mustRun(t, home, "events", "--kind", dextypes.EventTypeSwapped), &events)
	require.Len(t, events.Events, 1)
	require.Equal(t, swapped.Height, events.Events[0].Height)
}

func TestCLI_YAMLOutput(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "init")

	out := mustRun(t, home, "account", "alice", "-o", "yaml")
	require.Contains(t, out, "name: alice")
	require.Contains(t, out, "address: paw1")

	_, err := run(t, home, "account", "alice", "-o", "xml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestCLI_RequiresInit(t *testing.T) {
	home := t.TempDir() + "/missing"
	_, err := run(t, home, "pool", "list")
	require.ErrorContains(t, err, "not initialized")
}

func TestCLI_RequiresFrom(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "init")

	_, err := run(t, home, "asset", "create", "7")
	require.Error(t, err)
}
