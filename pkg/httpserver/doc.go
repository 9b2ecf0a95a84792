// Package httpserver runs the notifier's small operator-facing HTTP surface
// with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/email", httpserver.ProbeHandler(log, "email", probe))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives. Failures are
// wrapped with ErrStart or ErrShutdown.
package httpserver
