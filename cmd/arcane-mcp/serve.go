package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/everydev1618/arcane-mcp/config"
	"github.com/everydev1618/arcane-mcp/mcp"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Arcane tools over MCP",
		Long: `Serve the Arcane tools to an MCP client.

The stdio transport reads newline-delimited JSON-RPC from stdin and writes
responses to stdout. The http transport accepts one JSON-RPC message per
POST /mcp and reports health on GET /healthz.`,
		Example: `  ARCANE_HOST=https://arcane.example.com ARCANE_API_KEY=... arcane-mcp serve
  arcane-mcp serve --transport http --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			reg, err := buildTools(newClient(cfg), cfg.Tools)
			if err != nil {
				return err
			}

			srv := mcp.NewServer(reg,
				mcp.WithServerInfo(mcp.DefaultServerName, version),
				mcp.WithLogger(log.Logger),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().
				Str("transport", cfg.Transport).
				Str("host", cfg.Host).
				Int("tools", len(reg.Names())).
				Msg("starting arcane mcp server")

			switch mcp.TransportType(cfg.Transport) {
			case mcp.TransportHTTP:
				return srv.ListenAndServe(ctx, cfg.Addr)
			case mcp.TransportStdio:
				err := srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			default:
				return fmt.Errorf("unsupported transport %q", cfg.Transport)
			}
		},
	}

	cmd.Flags().String("transport", string(mcp.TransportStdio), "transport: stdio or http (ARCANE_TRANSPORT)")
	cmd.Flags().String("addr", "127.0.0.1:8080", "listen address for the http transport (ARCANE_ADDR)")
	a.bind(cmd, map[string]string{
		config.KeyTransport: "transport",
		config.KeyAddr:      "addr",
	}, false)

	return cmd
}
