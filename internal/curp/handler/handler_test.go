package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"curpcheck/internal/curp/handler/mocks"
	"curpcheck/internal/curp/service"
	"curpcheck/pkg/curp"
	dErrors "curpcheck/pkg/domain-errors"
	"curpcheck/pkg/testutil"
)

// HandlerSuite runs the handlers against the real service; only HTTP
// concerns (parsing, status codes, response mapping) are asserted here.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(logger, nil, service.WithMaxBatch(3))

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) post(path string, body any) (*AnalyzeResponse, int) {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, path, body))
	if rr.Code != http.StatusOK {
		return nil, rr.Code
	}
	resp := testutil.DecodeBody[AnalyzeResponse](s.T(), rr)
	return &resp, rr.Code
}

func (s *HandlerSuite) TestAnalyze_Valid() {
	resp, code := s.post("/curp/analyze", map[string]string{"curp": " gomj800101hdfnns09 "})
	s.Require().Equal(http.StatusOK, code)

	s.Equal("GOMJ800101HDFNNS09", resp.CURP)
	s.True(resp.Valid)
	s.Equal("valid", resp.Status)
	s.Empty(resp.Reason)
	s.Equal(curp.ValidMessage, resp.Message)
	s.Len(resp.Tokens, 12)
	s.Len(resp.Descriptions, 12)
	s.Equal("DF", resp.Tokens[7])
	s.Equal("birth entity: DISTRITO FEDERAL", resp.Descriptions[7])
	s.Equal("sex: Male", resp.Descriptions[6])
	s.Equal(8, resp.TotalNumbers)
	s.Equal(10, resp.TotalLetters)
	s.Equal(1980, resp.BirthYear)
	s.Equal("Male", resp.Sex)
	s.Equal("DISTRITO FEDERAL", resp.Entity)
}

func (s *HandlerSuite) TestAnalyze_SemanticErrorIsOK() {
	resp, code := s.post("/curp/analyze", map[string]string{"curp": "GOMJ810230HDFNNS09"})
	s.Require().Equal(http.StatusOK, code)

	s.False(resp.Valid)
	s.Equal("semantic_error", resp.Status)
	s.Equal("february_limit", resp.Reason)
	s.Contains(resp.Message, "28 days")
	s.Len(resp.Tokens, 12)
}

func (s *HandlerSuite) TestAnalyze_StructuralErrorHasEmptyArrays() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/curp/analyze", map[string]string{"curp": "abc"}))
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"tokens":[]`)
	s.Contains(rr.Body.String(), `"descriptions":[]`)

	resp := testutil.DecodeBody[AnalyzeResponse](s.T(), rr)
	s.Equal("structural_error", resp.Status)
	s.Equal(curp.StructuralMessage, resp.Message)
	s.Equal(3, resp.TotalLetters)
}

func (s *HandlerSuite) TestAnalyze_EmptyStringIsAnalyzed() {
	resp, code := s.post("/curp/analyze", map[string]string{"curp": ""})
	s.Require().Equal(http.StatusOK, code)
	s.Equal("structural_error", resp.Status)
}

func (s *HandlerSuite) TestAnalyze_MissingCURP() {
	_, code := s.post("/curp/analyze", map[string]string{"other": "x"})
	s.Equal(http.StatusUnprocessableEntity, code)
}

func (s *HandlerSuite) TestAnalyze_InvalidJSON() {
	_, code := s.post("/curp/analyze", `{"curp":`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *HandlerSuite) TestAnalyzePath() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/curp/gomj000229mjcnns01", nil))
	s.Require().Equal(http.StatusOK, rr.Code)

	resp := testutil.DecodeBody[AnalyzeResponse](s.T(), rr)
	s.True(resp.Valid)
	s.Equal(2000, resp.BirthYear)
	s.Equal("Female", resp.Sex)
	s.Equal("JALISCO", resp.Entity)
}

func (s *HandlerSuite) TestBatch() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/curp/analyze/batch",
		map[string][]string{"curps": {"GOMJ800101HDFNNS09", "GOMJ801301HDFNNS09", "x"}}))
	s.Require().Equal(http.StatusOK, rr.Code)

	resp := testutil.DecodeBody[BatchResponse](s.T(), rr)
	s.Require().Len(resp.Results, 3)
	s.Equal(1, resp.Valid)
	s.Equal(2, resp.Invalid)
	s.Equal("month_range", resp.Results[1].Reason)
	s.Equal("structural_error", resp.Results[2].Status)
}

func (s *HandlerSuite) TestBatch_Limits() {
	_, code := s.post("/curp/analyze/batch", map[string][]string{"curps": {}})
	s.Equal(http.StatusUnprocessableEntity, code)

	_, code = s.post("/curp/analyze/batch", map[string][]string{"curps": {"a", "b", "c", "d"}})
	s.Equal(http.StatusUnprocessableEntity, code)
}

func (s *HandlerSuite) TestEntities() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/curp/entities", nil))
	s.Require().Equal(http.StatusOK, rr.Code)

	resp := testutil.DecodeBody[EntitiesResponse](s.T(), rr)
	s.Require().Len(resp.Entities, 33)
	s.Equal(curp.Entity{Code: "AS", Name: "AGUASCALIENTES"}, resp.Entities[0])
}

func TestHandler_ServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	r := chi.NewRouter()
	New(svc, logger).Register(r)

	t.Run("analyze failure maps to 500 without details", func(t *testing.T) {
		svc.EXPECT().Analyze(gomock.Any(), "GOMJ800101HDFNNS09").
			Return(curp.Result{}, dErrors.New(dErrors.CodeInternal, "tracer exploded"))

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/curp/analyze", map[string]string{"curp": "GOMJ800101HDFNNS09"}))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "tracer exploded")
	})

	t.Run("cancelled batch maps to 503", func(t *testing.T) {
		svc.EXPECT().AnalyzeBatch(gomock.Any(), []string{"A"}).
			Return(nil, dErrors.Wrap(context.Canceled, dErrors.CodeUnavailable, "batch analysis cancelled"))

		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/curp/analyze/batch", map[string][]string{"curps": {"A"}}))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), "unavailable"))
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/curp/analyze", "not json"))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
