package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"curpcheck/internal/ratelimit/metrics"
	"curpcheck/internal/ratelimit/models"
	"curpcheck/pkg/platform/circuit"
	"curpcheck/pkg/platform/httputil"
	"curpcheck/pkg/platform/privacy"
	"curpcheck/pkg/requestcontext"
)

// BucketStore counts requests per key over a sliding window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// StatusHeader is set to "degraded" while limits come from the fallback store.
const StatusHeader = "X-RateLimit-Status"

type Middleware struct {
	store    BucketStore
	limit    int
	window   time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool

	fallback BucketStore
	breaker  *circuit.Breaker
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for testing/demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithMetrics records rejections and store failures.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

// WithFallback answers from fallback while breaker is open, so limits keep
// applying per instance when the primary store is down.
func WithFallback(fallback BucketStore, breaker *circuit.Breaker) Option {
	return func(m *Middleware) {
		m.fallback = fallback
		m.breaker = breaker
	}
}

func New(store BucketStore, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit limits requests per client IP. It relies on the client metadata
// middleware having run. A failing store lets the request through.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, degraded, err := m.allow(ctx, models.IPKey(ip))
		if err != nil {
			m.metrics.IncrementErrors()
			m.logger.ErrorContext(ctx, "failed to check IP rate limit",
				"request_id", requestcontext.RequestID(ctx),
				"ip_prefix", privacy.AnonymizeIP(ip),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		if degraded {
			w.Header().Set(StatusHeader, "degraded")
		}
		addRateLimitHeaders(w, result)
		if !result.Allowed {
			m.metrics.IncrementRejections()
			m.logger.WarnContext(ctx, "rate limit exceeded",
				"request_id", requestcontext.RequestID(ctx),
				"ip_prefix", privacy.AnonymizeIP(ip),
			)
			writeRateLimitExceeded(w, result)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow consults the primary store and falls back to the secondary one once
// the breaker opens. degraded reports that the breaker is not closed.
func (m *Middleware) allow(ctx context.Context, key string) (result *models.RateLimitResult, degraded bool, err error) {
	result, err = m.store.Allow(ctx, key, m.limit, m.window)
	if m.breaker == nil {
		return result, false, err
	}

	if err != nil {
		useFallback, change := m.breaker.RecordFailure()
		if change.Opened {
			m.logger.WarnContext(ctx, "rate limit store circuit opened", "circuit", m.breaker.Name(), "error", err)
		}
		if !useFallback || m.fallback == nil {
			return nil, false, err
		}
		m.metrics.IncrementErrors()
		result, err = m.fallback.Allow(ctx, key, m.limit, m.window)
		return result, true, err
	}

	usePrimary, change := m.breaker.RecordSuccess()
	if change.Closed {
		m.logger.InfoContext(ctx, "rate limit store circuit closed", "circuit", m.breaker.Name())
	}
	return result, !usePrimary, nil
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests from this IP address. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
