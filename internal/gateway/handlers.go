package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/spf13/cast"

	"github.com/paw-chain/pawdex/internal/eventlog"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

// Quote modes accepted by GET /quote
const (
	ModeExactFor  = "exact-for"  // amount of the pair's first asset priced in its second, at the pool ratio
	ModeForExact  = "for-exact"  // amount of the pair's second asset priced in its first, at the pool ratio
	ModeAmountOut = "amount-out" // what a swap of amount in would pay, fee included
	ModeAmountIn  = "amount-in"  // what a swap for amount out would cost, fee included
)

// maxEventLimit caps GET /events page size
const maxEventLimit = 1000

var errJournalUnavailable = errors.New("event journal is not enabled")

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	Codespace string `json:"codespace,omitempty"`
	Code      uint32 `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// QuoteResponse is the body of GET /quote
type QuoteResponse struct {
	AssetIn  uint32   `json:"asset_in"`
	AssetOut uint32   `json:"asset_out"`
	Mode     string   `json:"mode"`
	Amount   math.Int `json:"amount"`
	Quote    math.Int `json:"quote"`
}

// BalanceResponse is the body of GET /assets/{id}/balances/{addr}
type BalanceResponse struct {
	AssetID uint32   `json:"asset_id"`
	Address string   `json:"address"`
	Balance math.Int `json:"balance"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Height int64  `json:"height"`
}

// RegisterRoutes registers all API routes
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	r.HandleFunc("/pools", s.ListPools).Methods(http.MethodGet)
	r.HandleFunc("/pools/{a}/{b}", s.GetPool).Methods(http.MethodGet)
	r.HandleFunc("/quote/{in}/{out}", s.GetQuote).Methods(http.MethodGet)
	r.HandleFunc("/assets/{id}/balances/{addr}", s.GetBalance).Methods(http.MethodGet)
	r.HandleFunc("/events", s.ListEvents).Methods(http.MethodGet)
}

// Health handles GET /health
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Height: s.app.LastBlockHeight()})
}

// ListPools handles GET /pools
func (s *Server) ListPools(w http.ResponseWriter, r *http.Request) {
	var views []dextypes.PoolView
	err := s.app.Query(func(ctx sdk.Context) error {
		views = s.app.DEXKeeper.PoolViews(ctx)
		return nil
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pools": views,
		"total": len(views),
	})
}

// GetPool handles GET /pools/{a}/{b}
func (s *Server) GetPool(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	a, b, err := parsePair(vars["a"], vars["b"])
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var view dextypes.PoolView
	err = s.app.Query(func(ctx sdk.Context) error {
		var qErr error
		view, qErr = s.app.DEXKeeper.PoolView(ctx, a, b)
		return qErr
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetQuote handles GET /quote/{in}/{out}?amount=&mode=
func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	in, out, err := parsePair(vars["in"], vars["out"])
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	amount, ok := math.NewIntFromString(q.Get("amount"))
	if !ok || !amount.IsPositive() {
		s.respondError(w, r, dextypes.ErrInvalidAmount.Wrapf("amount %q", q.Get("amount")))
		return
	}
	mode := q.Get("mode")
	if mode == "" {
		mode = ModeExactFor
	}

	var quote math.Int
	err = s.app.Query(func(ctx sdk.Context) error {
		k := s.app.DEXKeeper
		var qErr error
		switch mode {
		case ModeExactFor:
			quote, qErr = k.QuoteExactFor(ctx, in, out, amount)
		case ModeForExact:
			quote, qErr = k.QuoteForExact(ctx, in, out, amount)
		case ModeAmountOut:
			quote, qErr = k.SimulateExactIn(ctx, in, out, amount)
		case ModeAmountIn:
			quote, qErr = k.SimulateExactOut(ctx, in, out, amount)
		default:
			qErr = errBadRequest{"unknown quote mode " + mode}
		}
		return qErr
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, QuoteResponse{
		AssetIn:  in,
		AssetOut: out,
		Mode:     mode,
		Amount:   amount,
		Quote:    quote,
	})
}

// GetBalance handles GET /assets/{id}/balances/{addr}
func (s *Server) GetBalance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := cast.ToUint32E(vars["id"])
	if err != nil {
		s.respondError(w, r, errBadRequest{"invalid asset id " + vars["id"]})
		return
	}
	addr, err := sdk.AccAddressFromBech32(vars["addr"])
	if err != nil {
		s.respondError(w, r, dextypes.ErrInvalidAddress.Wrap(err.Error()))
		return
	}

	var balance math.Int
	err = s.app.Query(func(ctx sdk.Context) error {
		if !s.app.AssetsKeeper.AssetExists(ctx, id) {
			return assetstypes.ErrAssetNotFound.Wrapf("asset %d", id)
		}
		balance = s.app.AssetsKeeper.Balance(ctx, id, addr)
		return nil
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{AssetID: id, Address: addr.String(), Balance: balance})
}

// ListEvents handles GET /events?kind=&limit=
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:     errJournalUnavailable.Error(),
			RequestID: requestID(r.Context()),
		})
		return
	}

	q := r.URL.Query()
	filter := eventlog.Filter{Kind: q.Get("kind")}
	if raw := q.Get("limit"); raw != "" {
		limit, err := cast.ToIntE(raw)
		if err != nil || limit <= 0 {
			s.respondError(w, r, errBadRequest{"invalid limit " + raw})
			return
		}
		filter.Limit = min(limit, maxEventLimit)
	}

	records, err := s.events.List(r.Context(), filter)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": records,
		"total":  len(records),
	})
}

func parsePair(a, b string) (uint32, uint32, error) {
	x, err := cast.ToUint32E(a)
	if err != nil {
		return 0, 0, errBadRequest{"invalid asset id " + a}
	}
	y, err := cast.ToUint32E(b)
	if err != nil {
		return 0, 0, errBadRequest{"invalid asset id " + b}
	}
	return x, y, nil
}

// errBadRequest is a malformed request that never reached the engine
type errBadRequest struct{ msg string }

func (e errBadRequest) Error() string { return e.msg }

// statusFor maps engine errors to HTTP statuses through their ABCI codes
func statusFor(err error) (int, string, uint32) {
	var bad errBadRequest
	if errors.As(err, &bad) {
		return http.StatusBadRequest, "", 0
	}

	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	switch {
	case errors.Is(err, dextypes.ErrPoolNotFound), errors.Is(err, assetstypes.ErrAssetNotFound):
		return http.StatusNotFound, codespace, code
	case codespace == dextypes.ModuleName, codespace == assetstypes.ModuleName:
		return http.StatusBadRequest, codespace, code
	default:
		return http.StatusInternalServerError, codespace, code
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, codespace, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", requestID(r.Context()))
		msg = "internal error"
	}
	respondJSON(w, status, ErrorResponse{
		Error:     msg,
		Codespace: codespace,
		Code:      code,
		RequestID: requestID(r.Context()),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
