package handler

import (
	dErrors "curpcheck/pkg/domain-errors"
)

// AnalyzeRequest is the HTTP request body for POST /curp/analyze.
type AnalyzeRequest struct {
	// Pointer so a missing key is told apart from an empty string, which
	// is a legitimate (structurally invalid) candidate.
	CURP *string `json:"curp"`
}

// Validate implements httputil.Validatable.
func (r *AnalyzeRequest) Validate() error {
	if r == nil || r.CURP == nil {
		return dErrors.New(dErrors.CodeValidation, "curp is required")
	}
	return nil
}

// BatchRequest is the HTTP request body for POST /curp/analyze/batch.
type BatchRequest struct {
	CURPs []string `json:"curps"`
}

// Validate implements httputil.Validatable. The upper bound is enforced by
// the service, which owns the configured limit.
func (r *BatchRequest) Validate() error {
	if r == nil || len(r.CURPs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "curps must contain at least one item")
	}
	return nil
}
