// Package gateway serves a read-only HTTP view of the engine: pools,
// balances, quotes and the event journal.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/paw-chain/pawdex/internal/app"
	"github.com/paw-chain/pawdex/internal/eventlog"
)

// Config holds configuration for the gateway
type Config struct {
	ListenAddr  string
	RateLimit   float64 // requests per second per client IP
	RateBurst   int
	CORSOrigins []string
}

// DefaultConfig returns the gateway defaults
func DefaultConfig() Config {
	return Config{
		ListenAddr:  "127.0.0.1:1318",
		RateLimit:   20,
		RateBurst:   40,
		CORSOrigins: []string{"*"},
	}
}

// EventStore lists journaled events
type EventStore interface {
	List(ctx context.Context, f eventlog.Filter) ([]eventlog.Record, error)
}

// Server is the HTTP gateway
type Server struct {
	app        *app.App
	events     EventStore
	logger     log.Logger
	metrics    *gatewayMetrics
	handler    http.Handler
	httpServer *http.Server
}

// NewServer builds the router and middleware chain. events may be nil, in
// which case /events reports the journal as unavailable.
func NewServer(cfg Config, engine *app.App, events EventStore, logger log.Logger) (*Server, error) {
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		return nil, fmt.Errorf("rate limit and burst must be positive")
	}
	metrics, err := newGatewayMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway metrics: %w", err)
	}

	s := &Server{
		app:     engine,
		events:  events,
		logger:  logger.With("module", "gateway"),
		metrics: metrics,
	}

	router := mux.NewRouter()
	s.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})

	limiter := newIPRateLimiter(cfg.RateLimit, cfg.RateBurst)

	var h http.Handler = router
	h = s.loggingMiddleware(h)
	h = limiter.middleware(h)
	h = requestIDMiddleware(h)
	h = c.Handler(h)
	h = handlers.ProxyHeaders(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(false), handlers.RecoveryLogger(recoveryLogger{s.logger}))(h)
	s.handler = h

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the full middleware chain
func (s *Server) Handler() http.Handler { return s.handler }

// Start serves until Stop is called
func (s *Server) Start() error {
	s.logger.Info("starting gateway", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping gateway")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

type recoveryLogger struct{ logger log.Logger }

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered", "panic", fmt.Sprint(v...))
}
