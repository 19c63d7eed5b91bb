package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	curphandler "curpcheck/internal/curp/handler"
	"curpcheck/internal/platform/metrics"
	"curpcheck/internal/platform/middleware"
	ratelimit "curpcheck/internal/ratelimit/middleware"
	"curpcheck/pkg/platform/httputil"
)

// HealthCheck reports whether a backing dependency is usable.
type HealthCheck func(ctx context.Context) error

// Dependencies are the components the router mounts.
type Dependencies struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	CURP      *curphandler.Handler
	RateLimit *ratelimit.Middleware

	// Checks are run by GET /health, keyed by dependency name.
	Checks map[string]HealthCheck
}

// NewRouter wires all public endpoints.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
	}
	r.Use(middleware.AccessLog(deps.Logger))

	r.Get("/health", healthHandler(deps.Checks))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.RateLimit)
		}
		deps.CURP.Register(r)
	})

	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{"status": "ok"}
		deps := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = "unavailable"
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				continue
			}
			deps[name] = "ok"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		httputil.WriteJSON(w, status, body)
	}
}
