package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawdex/internal/app"
	"github.com/paw-chain/pawdex/internal/eventlog"
	"github.com/paw-chain/pawdex/internal/telemetry"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
	flagOutput   = "output"
	flagFrom     = "from"
)

type cliContextKey struct{}

// cliContext carries the resolved home, config and logger to subcommands
type cliContext struct {
	Home   string
	Config Config
	Logger log.Logger
	Output string

	viper     *viper.Viper
	telemetry *telemetry.Provider
}

func getCLIContext(cmd *cobra.Command) (*cliContext, error) {
	c, ok := cmd.Context().Value(cliContextKey{}).(*cliContext)
	if !ok {
		return nil, errors.New("command context is not initialized")
	}
	return c, nil
}

// NewRootCmd creates the ammd root command
func NewRootCmd() *cobra.Command {
	// Ensure SDK bech32 prefixes are configured prior to CLI usage.
	app.SetConfig()

	rootCmd := &cobra.Command{
		Use:   "ammd",
		Short: "Constant-product AMM engine",
		Long: `ammd runs a constant-product automated market maker over a local asset ledger.

State lives in an IAVL store under --home. Every command that changes state
commits one block; queries read the latest block.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			v, err := newViper(home)
			if err != nil {
				return err
			}
			if err := v.BindPFlag(keyLogLevel, cmd.Flags().Lookup(flagLogLevel)); err != nil {
				return err
			}
			cfg, err := loadConfig(v, home)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("unknown output format %q", output)
			}

			provider, err := telemetry.NewProvider(telemetry.Config{
				TracingEnabled: cfg.Tracing.Enabled,
				OTLPEndpoint:   cfg.Tracing.Endpoint,
				SampleRate:     cfg.Tracing.SampleRate,
				Environment:    cfg.Tracing.Environment,
				MetricsEnabled: cmd.Name() == "serve",
			})
			if err != nil {
				return err
			}

			c := &cliContext{
				Home:      home,
				Config:    cfg,
				Logger:    logger,
				Output:    output,
				viper:     v,
				telemetry: provider,
			}
			cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, c))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return nil
			}
			return c.telemetry.Shutdown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultHome(), "directory for config, genesis and data")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (trace|debug|info|warn|error) or module filter")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputJSON, "output format (json|yaml)")

	rootCmd.AddCommand(
		InitCmd(),
		AccountCmd(),
		AssetCmd(),
		PoolCmd(),
		SwapCmd(),
		QuoteCmd(),
		EventsCmd(),
		CheckCmd(),
		ServeCmd(),
	)

	return rootCmd
}

// openApp opens the store and, when enabled, the event journal as a sink
func (c *cliContext) openApp(ctx context.Context) (*app.App, *eventlog.Journal, func(), error) {
	if _, err := os.Stat(c.Home); err != nil {
		return nil, nil, nil, fmt.Errorf("home %s is not initialized; run ammd init: %w", c.Home, err)
	}

	a, err := app.Open(c.Home, c.Logger)
	if err != nil {
		return nil, nil, nil, err
	}

	var journal *eventlog.Journal
	if c.Config.Journal.Enabled {
		journal, err = eventlog.Open(ctx, c.Config.Journal.Path)
		if err != nil {
			_ = a.Close()
			return nil, nil, nil, err
		}
		a.AddEventSink(journal)
	}

	cleanup := func() {
		if journal != nil {
			if err := journal.Close(); err != nil {
				c.Logger.Error("failed to close event journal", "err", err)
			}
		}
		if err := a.Close(); err != nil {
			c.Logger.Error("failed to close store", "err", err)
		}
	}
	return a, journal, cleanup, nil
}
