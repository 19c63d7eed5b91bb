package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"

	curphandler "curpcheck/internal/curp/handler"
	curpmetrics "curpcheck/internal/curp/metrics"
	"curpcheck/internal/curp/service"
	httpapi "curpcheck/internal/http"
	"curpcheck/internal/platform/config"
	"curpcheck/internal/platform/httpserver"
	"curpcheck/internal/platform/logger"
	"curpcheck/internal/platform/metrics"
	"curpcheck/internal/platform/redis"
	rlmetrics "curpcheck/internal/ratelimit/metrics"
	ratelimit "curpcheck/internal/ratelimit/middleware"
	"curpcheck/internal/ratelimit/store/bucket"
	"curpcheck/pkg/platform/circuit"
)

// main wires dependencies, serves the HTTP API and shuts down cleanly on
// SIGINT or SIGTERM. Validation logic lives in pkg/curp.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	reg := metrics.NewRegistry()
	httpMetrics := metrics.New(reg)

	checks := map[string]httpapi.HealthCheck{}
	limiterOpts := []ratelimit.Option{
		ratelimit.WithDisabled(cfg.RateLimit.Disabled),
		ratelimit.WithMetrics(rlmetrics.New(reg)),
	}
	var store ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		store = bucket.NewRedisBucketStore(redisClient.Client)
		checks["redis"] = redisClient.Health
		limiterOpts = append(limiterOpts,
			ratelimit.WithFallback(bucket.NewInMemoryBucketStore(), circuit.New("redis")))
		log.Info("rate limiting backed by redis")
	} else {
		log.Info("rate limiting backed by in-memory store")
	}

	svc := service.New(log, curpmetrics.New(reg),
		service.WithMaxBatch(cfg.Batch.MaxItems),
		service.WithConcurrency(cfg.Batch.Concurrency),
		service.WithTracer(otel.Tracer("curpcheck")),
	)

	limiter := ratelimit.New(store, cfg.RateLimit.Requests, cfg.RateLimit.Window, log, limiterOpts...)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Logger:    log,
		Metrics:   httpMetrics,
		CURP:      curphandler.New(svc, log),
		RateLimit: limiter,
		Checks:    checks,
	})

	srv := httpserver.New(cfg.Server, router, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting curpcheck", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
