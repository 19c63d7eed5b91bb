package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curpcheck/internal/platform/config"
)

func TestNew(t *testing.T) {
	cfg := config.Server{
		Addr:              ":9999",
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       2 * time.Second,
		WriteTimeout:      3 * time.Second,
		IdleTimeout:       4 * time.Second,
	}
	var buf bytes.Buffer
	srv := New(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Equal(t, ":9999", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 2*time.Second, srv.ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.WriteTimeout)
	assert.Equal(t, 4*time.Second, srv.IdleTimeout)

	require.NotNil(t, srv.ErrorLog)
	srv.ErrorLog.Print("http: TLS handshake error")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "TLS handshake error")
}

func TestNew_NoLogger(t *testing.T) {
	srv := New(config.Server{Addr: ":0"}, http.NotFoundHandler(), nil)
	assert.Nil(t, srv.ErrorLog)
}
