package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawdex/internal/gateway"
)

const (
	configFileName  = "config.toml"
	genesisFileName = "genesis.json"
	envPrefix       = "AMMD"
)

// Config keys
const (
	keyLogLevel          = "log_level"
	keyHTTPListen        = "http.listen"
	keyHTTPRateLimit     = "http.rate_limit"
	keyHTTPRateBurst     = "http.rate_burst"
	keyHTTPCORSOrigins   = "http.cors_origins"
	keyJournalEnabled    = "journal.enabled"
	keyJournalPath       = "journal.path"
	keyTracingEnabled    = "tracing.enabled"
	keyTracingEndpoint   = "tracing.endpoint"
	keyTracingSampleRate = "tracing.sample_rate"
	keyTracingEnv        = "tracing.environment"
)

// Config is the resolved ammd configuration
type Config struct {
	LogLevel string
	HTTP     gateway.Config
	Journal  JournalConfig
	Tracing  TracingConfig
}

// JournalConfig configures the SQLite event journal
type JournalConfig struct {
	Enabled bool
	Path    string // relative paths resolve against the home directory
}

// TracingConfig configures OTLP span export
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	SampleRate  float64
	Environment string
}

// DefaultHome returns $AMMD_HOME or $HOME/.ammd
func DefaultHome() string {
	if home := os.Getenv(envPrefix + "_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".ammd"
	}
	return filepath.Join(userHome, ".ammd")
}

func setDefaults(v *viper.Viper) {
	gw := gateway.DefaultConfig()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyHTTPListen, gw.ListenAddr)
	v.SetDefault(keyHTTPRateLimit, gw.RateLimit)
	v.SetDefault(keyHTTPRateBurst, gw.RateBurst)
	v.SetDefault(keyHTTPCORSOrigins, gw.CORSOrigins)
	v.SetDefault(keyJournalEnabled, true)
	v.SetDefault(keyJournalPath, filepath.Join("data", "events.db"))
	v.SetDefault(keyTracingEnabled, false)
	v.SetDefault(keyTracingEndpoint, "localhost:4318")
	v.SetDefault(keyTracingSampleRate, 1.0)
	v.SetDefault(keyTracingEnv, "local")
}

// newViper reads home/config.toml, if present, under AMMD_* env overrides
func newViper(home string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, configFileName))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", configFileName, err)
		}
	}
	return v, nil
}

// loadConfig coerces viper values, which may arrive as env strings
func loadConfig(v *viper.Viper, home string) (Config, error) {
	var cfg Config
	var err error

	cfg.LogLevel = cast.ToString(v.Get(keyLogLevel))
	cfg.HTTP.ListenAddr = cast.ToString(v.Get(keyHTTPListen))
	if cfg.HTTP.RateLimit, err = cast.ToFloat64E(v.Get(keyHTTPRateLimit)); err != nil {
		return cfg, fmt.Errorf("%s: %w", keyHTTPRateLimit, err)
	}
	if cfg.HTTP.RateBurst, err = cast.ToIntE(v.Get(keyHTTPRateBurst)); err != nil {
		return cfg, fmt.Errorf("%s: %w", keyHTTPRateBurst, err)
	}
	cfg.HTTP.CORSOrigins = toStringList(v.Get(keyHTTPCORSOrigins))

	if cfg.Journal.Enabled, err = cast.ToBoolE(v.Get(keyJournalEnabled)); err != nil {
		return cfg, fmt.Errorf("%s: %w", keyJournalEnabled, err)
	}
	cfg.Journal.Path = cast.ToString(v.Get(keyJournalPath))
	if cfg.Journal.Path != "" && !filepath.IsAbs(cfg.Journal.Path) {
		cfg.Journal.Path = filepath.Join(home, cfg.Journal.Path)
	}

	if cfg.Tracing.Enabled, err = cast.ToBoolE(v.Get(keyTracingEnabled)); err != nil {
		return cfg, fmt.Errorf("%s: %w", keyTracingEnabled, err)
	}
	cfg.Tracing.Endpoint = cast.ToString(v.Get(keyTracingEndpoint))
	if cfg.Tracing.SampleRate, err = cast.ToFloat64E(v.Get(keyTracingSampleRate)); err != nil {
		return cfg, fmt.Errorf("%s: %w", keyTracingSampleRate, err)
	}
	cfg.Tracing.Environment = cast.ToString(v.Get(keyTracingEnv))

	if cfg.HTTP.RateLimit <= 0 || cfg.HTTP.RateBurst <= 0 {
		return cfg, fmt.Errorf("http rate limit and burst must be positive")
	}
	return cfg, nil
}

// toStringList accepts a TOML array or a comma separated env value
func toStringList(raw interface{}) []string {
	if s, ok := raw.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return cast.ToStringSlice(raw)
}

// newLogger accepts a plain level ("debug") or a module filter ("x/dex:debug,*:error")
func newLogger(w io.Writer, level string) (log.Logger, error) {
	var opts []log.Option
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		opts = append(opts, log.LevelOption(lvl))
	} else {
		filter, err := log.ParseLogLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		opts = append(opts, log.FilterOption(filter))
	}
	return log.NewLogger(w, opts...), nil
}
