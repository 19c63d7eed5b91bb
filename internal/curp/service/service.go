package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"curpcheck/internal/curp/metrics"
	"curpcheck/pkg/curp"
	dErrors "curpcheck/pkg/domain-errors"
	"curpcheck/pkg/platform/privacy"
	"curpcheck/pkg/requestcontext"
)

const (
	defaultMaxBatch    = 100
	defaultConcurrency = 8
)

// Service runs CURP analysis for the transport layers. It owns
// normalization of user input, metrics, tracing and logging; the decision
// itself is curp.Analyze.
type Service struct {
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	maxBatch    int
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxBatch bounds the number of items accepted by AnalyzeBatch.
func WithMaxBatch(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithConcurrency bounds the goroutines AnalyzeBatch uses.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New constructs a Service. metrics may be nil.
func New(logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		logger:      logger,
		metrics:     m,
		tracer:      otel.Tracer("curpcheck/internal/curp/service"),
		maxBatch:    defaultMaxBatch,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxBatch reports the configured batch limit.
func (s *Service) MaxBatch() int {
	return s.maxBatch
}

// Analyze normalizes raw and analyzes it. Invalid CURPs are not errors:
// the verdict on the result describes the defect.
func (s *Service) Analyze(ctx context.Context, raw string) (curp.Result, error) {
	ctx, span := s.tracer.Start(ctx, "curp.Analyze")
	defer span.End()

	res := s.analyze(raw)
	span.SetAttributes(
		attribute.String("curp.status", string(res.Verdict.Status)),
		attribute.String("curp.reason", string(res.Verdict.Reason)),
	)

	s.logger.InfoContext(ctx, "curp analyzed",
		"request_id", requestcontext.RequestID(ctx),
		"curp", privacy.MaskCURP(res.Input),
		"status", res.Verdict.Status,
		"reason", res.Verdict.Reason,
	)
	return res, nil
}

// AnalyzeBatch analyzes raws concurrently and returns results in input
// order. It fails only for an empty or oversized batch or when ctx ends
// before every item is done.
func (s *Service) AnalyzeBatch(ctx context.Context, raws []string) ([]curp.Result, error) {
	if len(raws) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "curps must contain at least one item")
	}
	if len(raws) > s.maxBatch {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("curps must contain at most %d items", s.maxBatch))
	}

	ctx, span := s.tracer.Start(ctx, "curp.AnalyzeBatch", trace.WithAttributes(attribute.Int("curp.batch_size", len(raws))))
	defer span.End()
	s.metrics.ObserveBatchSize(len(raws))

	results := make([]curp.Result, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyze(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "curp batch aborted",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "batch analysis cancelled")
	}

	valid := 0
	for _, r := range results {
		if r.Verdict.Valid() {
			valid++
		}
	}
	s.logger.InfoContext(ctx, "curp batch analyzed",
		"request_id", requestcontext.RequestID(ctx),
		"items", len(results),
		"valid", valid,
	)
	return results, nil
}

// Entities returns the birth entity catalogue.
func (s *Service) Entities(_ context.Context) []curp.Entity {
	return curp.Entities()
}

func (s *Service) analyze(raw string) curp.Result {
	start := time.Now()
	res := curp.Analyze(curp.Normalize(raw))
	s.metrics.ObserveAnalyzeLatency(time.Since(start))
	s.metrics.IncrementAnalysis(string(res.Verdict.Status), string(res.Verdict.Reason))
	return res
}
