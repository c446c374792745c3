package eventlog_test

import (
	"context"
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/internal/eventlog"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

func swapped(amountIn string) sdk.Event {
	return sdk.NewEvent(dextypes.EventTypeSwapped,
		sdk.NewAttribute(dextypes.AttributeKeyAssetIn, "1"),
		sdk.NewAttribute(dextypes.AttributeKeyAmountIn, amountIn),
	)
}

func openJournal(t *testing.T) *eventlog.Journal {
	t.Helper()
	j, err := eventlog.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_AppendAndList(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)

	require.NoError(t, j.HandleEvents(ctx, 2, sdk.Events{
		sdk.NewEvent(dextypes.EventTypePoolCreated, sdk.NewAttribute(dextypes.AttributeKeyClaimAsset, "100")),
		swapped("10"),
	}))
	require.NoError(t, j.HandleEvents(ctx, 3, sdk.Events{swapped("20")}))
	require.NoError(t, j.HandleEvents(ctx, 4, nil))

	all, err := j.List(ctx, eventlog.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, int64(3), all[0].Height)
	require.Equal(t, "20", all[0].Attributes[dextypes.AttributeKeyAmountIn])

	swaps, err := j.List(ctx, eventlog.Filter{Kind: dextypes.EventTypeSwapped, Limit: 1})
	require.NoError(t, err)
	require.Len(t, swaps, 1)
	require.Equal(t, "20", swaps[0].Attributes[dextypes.AttributeKeyAmountIn])

	recent, err := j.List(ctx, eventlog.Filter{FromHeight: 3})
	require.NoError(t, err)
	require.Len(t, recent, 1)

	n, err := j.Count(ctx, dextypes.EventTypeSwapped)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, err = j.Count(ctx, "")
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}

func TestJournal_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")

	j, err := eventlog.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, j.HandleEvents(ctx, 7, sdk.Events{swapped("5")}))
	require.NoError(t, j.Close())

	j, err = eventlog.Open(ctx, path)
	require.NoError(t, err)
	defer j.Close()

	records, err := j.List(ctx, eventlog.Filter{Kind: dextypes.EventTypeSwapped})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, int64(7), records[0].Height)
}

func TestJournal_Closed(t *testing.T) {
	j, err := eventlog.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	_, err = j.List(context.Background(), eventlog.Filter{})
	require.ErrorIs(t, err, eventlog.ErrClosed)
	require.ErrorIs(t, j.HandleEvents(context.Background(), 1, sdk.Events{swapped("1")}), eventlog.ErrClosed)
}
