package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"curpcheck/pkg/curp"
	"curpcheck/pkg/platform/httputil"
	"curpcheck/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// Service defines the CURP operations the handler needs.
type Service interface {
	Analyze(ctx context.Context, raw string) (curp.Result, error)
	AnalyzeBatch(ctx context.Context, raws []string) ([]curp.Result, error)
	Entities(ctx context.Context) []curp.Entity
}

// Handler wires CURP endpoints to the CURP service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a CURP handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts CURP endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/curp/analyze", h.HandleAnalyze)
	r.Post("/curp/analyze/batch", h.HandleAnalyzeBatch)
	r.Get("/curp/entities", h.HandleEntities)
	r.Get("/curp/{curp}", h.HandleAnalyzePath)
}

// HandleAnalyze handles POST /curp/analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AnalyzeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.analyze(ctx, w, requestID, *req.CURP)
}

// HandleAnalyzePath handles GET /curp/{curp} requests.
func (h *Handler) HandleAnalyzePath(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.analyze(ctx, w, requestcontext.RequestID(ctx), chi.URLParam(r, "curp"))
}

func (h *Handler) analyze(ctx context.Context, w http.ResponseWriter, requestID, raw string) {
	res, err := h.service.Analyze(ctx, raw)
	if err != nil {
		h.logger.ErrorContext(ctx, "curp analysis failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromResult(res))
}

// HandleAnalyzeBatch handles POST /curp/analyze/batch requests.
func (h *Handler) HandleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.AnalyzeBatch(ctx, req.CURPs)
	if err != nil {
		h.logger.ErrorContext(ctx, "curp batch analysis failed",
			"request_id", requestID,
			"items", len(req.CURPs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromResults(results))
}

// HandleEntities handles GET /curp/entities requests.
func (h *Handler) HandleEntities(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, EntitiesResponse{Entities: h.service.Entities(r.Context())})
}
