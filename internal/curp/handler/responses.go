package handler

import (
	"curpcheck/pkg/curp"
)

// AnalyzeResponse is the analysis of one CURP. Tokens and Descriptions are
// empty arrays, never null, when the input fails the grammar.
type AnalyzeResponse struct {
	CURP         string   `json:"curp"`
	Tokens       []string `json:"tokens"`
	Descriptions []string `json:"descriptions"`
	Message      string   `json:"message"`
	Status       string   `json:"status"`
	Reason       string   `json:"reason,omitempty"`
	Valid        bool     `json:"valid"`
	TotalNumbers int      `json:"total_numbers"`
	TotalLetters int      `json:"total_letters"`
	BirthYear    int      `json:"birth_year,omitempty"`
	Sex          string   `json:"sex,omitempty"`
	Entity       string   `json:"entity,omitempty"`
}

// BatchResponse is the HTTP response for POST /curp/analyze/batch.
type BatchResponse struct {
	Results []*AnalyzeResponse `json:"results"`
	Valid   int                `json:"valid"`
	Invalid int                `json:"invalid"`
}

// EntitiesResponse is the HTTP response for GET /curp/entities.
type EntitiesResponse struct {
	Entities []curp.Entity `json:"entities"`
}

// FromResult converts a curp.Result to an HTTP response.
func FromResult(res curp.Result) *AnalyzeResponse {
	return &AnalyzeResponse{
		CURP:         res.Input,
		Tokens:       res.Values(),
		Descriptions: res.Labels(),
		Message:      res.Verdict.Message,
		Status:       string(res.Verdict.Status),
		Reason:       string(res.Verdict.Reason),
		Valid:        res.Verdict.Valid(),
		TotalNumbers: res.Digits,
		TotalLetters: res.Letters,
		BirthYear:    res.BirthYear,
		Sex:          res.Sex,
		Entity:       res.EntityName,
	}
}

// FromResults converts batch results, counting verdicts.
func FromResults(results []curp.Result) *BatchResponse {
	resp := &BatchResponse{Results: make([]*AnalyzeResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = FromResult(r)
		if r.Verdict.Valid() {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}
