package httpserver

import (
	"log/slog"
	"net/http"

	"curpcheck/internal/platform/config"
)

// New builds the HTTP server. Timeouts come from cfg and net/http's own
// error log is routed through logger at warn level.
func New(cfg config.Server, handler http.Handler, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	if logger != nil {
		srv.ErrorLog = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
	}
	return srv
}
