package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/everydev1618/arcane-mcp/arcane"
	"github.com/everydev1618/arcane-mcp/config"
	"github.com/everydev1618/arcane-mcp/tools"
)

// app carries state shared by the subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "arcane-mcp",
		Short:         "Model Context Protocol server for the Arcane container management API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(a.envFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	pf.String("host", "", "Arcane host URL, e.g. https://arcane.example.com (ARCANE_HOST)")
	pf.String("api-key", "", "Arcane API key (ARCANE_API_KEY)")
	pf.Duration("timeout", arcane.DefaultTimeout, "per-request timeout (ARCANE_TIMEOUT)")
	pf.Float64("rate-limit", 0, "maximum backend requests per second, 0 disables (ARCANE_RATE_LIMIT)")
	pf.Int("rate-burst", 1, "request burst allowed by the rate limit (ARCANE_RATE_BURST)")
	pf.String("log-level", "info", "log level: debug, info, warn, error (ARCANE_LOG_LEVEL)")
	pf.StringSlice("tools", nil, "expose only these tools (ARCANE_TOOLS)")

	a.bind(root, map[string]string{
		config.KeyHost:      "host",
		config.KeyAPIKey:    "api-key",
		config.KeyTimeout:   "timeout",
		config.KeyRateLimit: "rate-limit",
		config.KeyRateBurst: "rate-burst",
		config.KeyLogLevel:  "log-level",
		config.KeyTools:     "tools",
	}, true)

	root.AddCommand(
		newServeCmd(a),
		newToolsCmd(a),
		newCallCmd(a),
		newVersionCmd(),
	)
	return root
}

// bind maps config keys to flags of cmd.
func (a *app) bind(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// load reads and validates the configuration and sets up logging on w.
func (a *app) load(w io.Writer) (*config.Config, error) {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return nil, err
	}
	setupLogging(w, cfg.Level())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the global logger at w. Stdout is reserved for the
// stdio transport, so w is always the command's error stream.
func setupLogging(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}

// newClient builds the backend client for cfg.
func newClient(cfg *config.Config) *arcane.Client {
	opts := append(cfg.ClientOptions(),
		arcane.WithLogger(log.Logger),
		arcane.WithUserAgent("arcane-mcp/"+version),
	)
	return arcane.New(cfg.Host, cfg.APIKey, opts...)
}

// buildTools registers the Arcane tools on inv, restricted to names when
// it is non-empty.
func buildTools(inv arcane.Invoker, names []string) (*tools.Tools, error) {
	reg := tools.NewTools(tools.WithMiddleware(tools.LoggingMiddleware(log.Logger)))
	if err := tools.RegisterArcane(reg, inv); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return reg, nil
	}

	for _, name := range names {
		if !reg.Has(name) {
			return nil, fmt.Errorf("tools: unknown tool %q", name)
		}
	}
	return reg.Filter(names...), nil
}
