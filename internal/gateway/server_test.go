package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawdex/internal/app"
	"github.com/paw-chain/pawdex/internal/eventlog"
	"github.com/paw-chain/pawdex/internal/gateway"
	keepertest "github.com/paw-chain/pawdex/testutil/keeper"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

type fixture struct {
	handler http.Handler
	creator sdk.AccAddress
}

// setupGateway seeds pool 1/2 with reserves (10000, 200) and claim asset 100.
func setupGateway(t *testing.T, cfg gateway.Config) fixture {
	t.Helper()

	engine, err := app.New(dbm.NewMemDB(), log.NewNopLogger())
	require.NoError(t, err)
	journal, err := eventlog.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })
	engine.AddEventSink(journal)

	_, err = engine.InitChain(app.NewDefaultGenesisState(engine.LegacyAmino()))
	require.NoError(t, err)

	creator := keepertest.TestAddr("creator")
	_, err = engine.Exec(func(ctx sdk.Context) error {
		ak := engine.AssetsKeeper
		for _, id := range []uint32{1, 2} {
			if err := ak.Create(ctx, id, creator, true, math.OneInt()); err != nil {
				return err
			}
			if err := ak.MintInto(ctx, id, creator, math.NewInt(1_000_000)); err != nil {
				return err
			}
		}
		if err := ak.MintInto(ctx, app.NativeAssetID, creator, math.NewInt(1000)); err != nil {
			return err
		}
		if _, err := engine.DEXKeeper.CreatePool(ctx, creator, 1, 2, 100); err != nil {
			return err
		}
		_, err := engine.DEXKeeper.AddLiquidity(ctx, creator, 1, 2, math.NewInt(10000), math.NewInt(200), math.ZeroInt(), math.ZeroInt(), creator)
		return err
	})
	require.NoError(t, err)

	srv, err := gateway.NewServer(cfg, engine, journal, log.NewNopLogger())
	require.NoError(t, err)
	return fixture{handler: srv.Handler(), creator: creator}
}

func get(t *testing.T, h http.Handler, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestGateway_HealthAndPools(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	var health gateway.HealthResponse
	rec := get(t, f.handler, "/health", &health)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, int64(2), health.Height)

	var list struct {
		Pools []dextypes.PoolView `json:"pools"`
		Total int                 `json:"total"`
	}
	rec = get(t, f.handler, "/pools", &list)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, list.Total)

	var view dextypes.PoolView
	rec = get(t, f.handler, "/pools/2/1", &view)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint32(100), view.ClaimAsset)
	require.True(t, view.ReserveSecond.Equal(math.NewInt(200)))

	var errResp gateway.ErrorResponse
	rec = get(t, f.handler, "/pools/1/9", &errResp)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, dextypes.ModuleName, errResp.Codespace)
	require.Equal(t, dextypes.ErrPoolNotFound.ABCICode(), errResp.Code)
}

func TestGateway_Quote(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	tests := []struct {
		name string
		path string
		want int64
	}{
		{"exact-for is the default mode", "/quote/1/2?amount=3000", 60},
		{"exact-for ignores argument order", "/quote/2/1?amount=3000", 60},
		{"for-exact inverts", "/quote/1/2?amount=60&mode=for-exact", 3000},
		{"for-exact ignores argument order", "/quote/2/1?amount=60&mode=for-exact", 3000},
		{"amount-out charges the fee", "/quote/2/1?amount=10&mode=amount-out", 462},
		{"amount-in covers the output", "/quote/2/1?amount=462&mode=amount-in", 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var quote gateway.QuoteResponse
			rec := get(t, f.handler, tc.path, &quote)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.True(t, quote.Quote.Equal(math.NewInt(tc.want)), "got %s", quote.Quote)
		})
	}
}

func TestGateway_QuoteErrors(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	tests := []struct {
		name     string
		path     string
		status   int
		wantCode uint32
	}{
		{"bad amount", "/quote/1/2?amount=abc", http.StatusBadRequest, dextypes.ErrInvalidAmount.ABCICode()},
		{"zero amount", "/quote/1/2?amount=0", http.StatusBadRequest, dextypes.ErrInvalidAmount.ABCICode()},
		{"identical assets", "/quote/1/1?amount=5", http.StatusBadRequest, dextypes.ErrIdenticalAssets.ABCICode()},
		{"missing pool", "/quote/1/3?amount=5", http.StatusNotFound, dextypes.ErrPoolNotFound.ABCICode()},
		{"unknown mode", "/quote/1/2?amount=5&mode=bogus", http.StatusBadRequest, 0},
		{"bad asset id", "/quote/x/2?amount=5", http.StatusBadRequest, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var errResp gateway.ErrorResponse
			rec := get(t, f.handler, tc.path, &errResp)
			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.wantCode, errResp.Code)
			require.NotEmpty(t, errResp.RequestID)
		})
	}
}

func TestGateway_Balance(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	var bal gateway.BalanceResponse
	rec := get(t, f.handler, "/assets/1/balances/"+f.creator.String(), &bal)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, bal.Balance.Equal(math.NewInt(990_000)), "got %s", bal.Balance)

	rec = get(t, f.handler, "/assets/99/balances/"+f.creator.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, f.handler, "/assets/1/balances/not-an-address", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateway_Events(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	var resp struct {
		Events []eventlog.Record `json:"events"`
		Total  int               `json:"total"`
	}
	rec := get(t, f.handler, "/events?kind="+dextypes.EventTypePoolCreated, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "100", resp.Events[0].Attributes[dextypes.AttributeKeyClaimAsset])

	rec = get(t, f.handler, "/events?limit=1", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Events, 1)
	require.Equal(t, dextypes.EventTypeLiquidityAdded, resp.Events[0].Kind)

	rec = get(t, f.handler, "/events?limit=-3", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateway_RequestID(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	rec := get(t, f.handler, "/health", nil)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestGateway_RateLimitPerIP(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateBurst = 1
	f := setupGateway(t, cfg)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	require.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestGateway_Metrics(t *testing.T) {
	f := setupGateway(t, gateway.DefaultConfig())

	rec := get(t, f.handler, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_InvalidConfig(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.RateBurst = 0
	_, err := gateway.NewServer(cfg, nil, nil, log.NewNopLogger())
	require.Error(t, err)
}
