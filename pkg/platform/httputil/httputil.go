// Package httputil holds the JSON plumbing shared by HTTP handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "curpcheck/pkg/domain-errors"
)

// MaxBodyBytes caps request bodies decoded by DecodeJSON.
const MaxBodyBytes = 64 << 10

// Validatable is implemented by request DTOs that normalize and check
// themselves after decoding.
type Validatable interface {
	Validate() error
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status and error envelope. Internal errors
// never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	description := ""
	if de, ok := dErrors.As(err); ok {
		code = de.Code
		description = de.Message
	}
	if code == dErrors.CodeInternal {
		description = ""
	}
	WriteJSON(w, StatusFor(code), errorResponse{Error: string(code), ErrorDescription: description})
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a single JSON value from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return dErrors.New(dErrors.CodeBadRequest, "request body is required")
		case errors.As(err, &tooLarge):
			return dErrors.New(dErrors.CodeBadRequest, "request body too large")
		default:
			return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
		}
	}
	return nil
}

// DecodeAndPrepare decodes the body into a T and, when *T is Validatable,
// validates it. On failure it writes the error response, logs it and
// returns false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := DecodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "failed to decode request",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}
	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "invalid request",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
