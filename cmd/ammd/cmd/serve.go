package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/paw-chain/pawdex/internal/gateway"
)

const (
	flagListen      = "listen"
	flagRateLimit   = "rate-limit"
	flagRateBurst   = "rate-burst"
	flagCORSOrigins = "cors-origins"

	shutdownTimeout = 10 * time.Second
)

// ServeCmd runs the read-only HTTP gateway
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pools, quotes, balances and events over HTTP",
		Long: `Serve exposes a read-only JSON gateway:

  GET /pools
  GET /pools/{a}/{b}
  GET /quote/{in}/{out}?amount=&mode=exact-for|for-exact|amount-out|amount-in
  GET /assets/{id}/balances/{addr}
  GET /events?kind=&limit=
  GET /health
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			for key, flag := range map[string]string{
				keyHTTPListen:      flagListen,
				keyHTTPRateLimit:   flagRateLimit,
				keyHTTPRateBurst:   flagRateBurst,
				keyHTTPCORSOrigins: flagCORSOrigins,
			} {
				if err := c.viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(c.viper, c.Home)
			if err != nil {
				return err
			}

			a, journal, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var events gateway.EventStore
			if journal != nil {
				events = journal
			}
			srv, err := gateway.NewServer(cfg.HTTP, a, events, c.Logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	gw := gateway.DefaultConfig()
	cmd.Flags().String(flagListen, gw.ListenAddr, "address the gateway listens on")
	cmd.Flags().Float64(flagRateLimit, gw.RateLimit, "requests per second per client IP")
	cmd.Flags().Int(flagRateBurst, gw.RateBurst, "burst allowance per client IP")
	cmd.Flags().StringSlice(flagCORSOrigins, gw.CORSOrigins, "allowed CORS origins")
	return cmd
}
