package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wizdesk/notify/pkg/logger"
)

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ProbeFunc runs a dependency check and returns a JSON-serializable report
// plus whether the dependency is healthy.
type ProbeFunc func(ctx context.Context) (report any, healthy bool)

// ProbeHandler runs probe per request and writes its report as JSON with
// 200 when healthy and 503 otherwise.
func ProbeHandler(log *slog.Logger, name string, probe ProbeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, healthy := probe(r.Context())

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
			log.WarnContext(r.Context(), "health probe failed", logger.Component(name))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			log.ErrorContext(r.Context(), "failed to encode probe report", logger.Component(name), logger.Error(err))
		}
	}
}
