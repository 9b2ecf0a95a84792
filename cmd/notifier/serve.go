package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/wizdesk/notify/pkg/config"
	"github.com/wizdesk/notify/pkg/environment"
	"github.com/wizdesk/notify/pkg/httpserver"
	"github.com/wizdesk/notify/pkg/logger"
	"github.com/wizdesk/notify/pkg/requestid"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve operator health endpoints for the email provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg httpserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			var healthCfg healthConfig
			if err := config.Load(&healthCfg); err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log))
			if err := srv.Run(cmd.Context(), newRouter(a, healthCfg.EmailCacheTTL)); err != nil {
				a.log.Error("http server stopped with error", logger.Error(err))
				return err
			}
			return nil
		},
	}
}

// healthConfig controls /health/email. Every uncached check sends a real
// email to the connection test address, so keep the TTL well above the
// polling interval of whatever calls it.
type healthConfig struct {
	EmailCacheTTL time.Duration `env:"EMAIL_HEALTH_CACHE_TTL" envDefault:"5m"`
}

// emailProbeTimeout caps a single /health/email probe.
const emailProbeTimeout = 15 * time.Second

func newRouter(a *app, emailCacheTTL time.Duration) http.Handler {
	emailStatus := newConnectionCache(a.notifier.TestConnection, emailCacheTTL)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(a.env))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/email", httpserver.ProbeHandler(a.log, "email", func(ctx context.Context) (any, bool) {
		ctx, cancel := context.WithTimeout(ctx, emailProbeTimeout)
		defer cancel()

		status := emailStatus.Status(ctx)
		return status, status.Succeeded
	}))
	return r
}
