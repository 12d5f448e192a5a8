package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tabs/internal/tracing"
	"github.com/vango-dev/tabs/pkg/server"
	"github.com/vango-dev/tabs/pkg/tabs"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page and its tab groups",
		Long: `Serve the page over HTTP with live tab groups.

Routes:
  /                 the page with every tab group in its initial state
  /_tabs/client.js  the thin client
  /_tabs/ws         the WebSocket the client connects to
  /metrics          Prometheus metrics
  /healthz          liveness

Examples:
  tabsd serve
  tabsd serve --page index.html --addr :8080
  tabsd serve --page s3://my-bucket/pages/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from tabs.json)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, addr string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if addr != "" {
		if err := cfg.SetAddress(addr); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	page, err := loadPage(ctx, cfg)
	if err != nil {
		return err
	}

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		ServiceName: cfg.Tracing.ServiceName,
		Writer:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	readTimeout, _ := cfg.ReadTimeout()
	srvCfg := server.DefaultServerConfig()
	srvCfg.Address = cfg.Address()
	srvCfg.ReadTimeout = readTimeout
	srvCfg.MaxSessions = cfg.Server.MaxSessions
	srvCfg.MetricsNamespace = cfg.Metrics.Namespace
	srvCfg.Tabs = []tabs.Option{tabs.WithMarkers(cfg.TabsMarkers())}

	srv, err := server.New(page, srvCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Serving %s", cfg.PageLocation())
	info(out, "http://%s (%d tab groups)", cfg.Address(), srv.Groups())
	if provider.Enabled() {
		info(out, "tracing to %s", cfg.Tracing.Exporter)
	}

	return srv.RunContext(ctx)
}
