package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konkred/valuation-cli/internal/badge"
	"github.com/konkred/valuation-cli/internal/judge"
	"github.com/konkred/valuation-cli/internal/valuation"
)

// canonicalJudge returns fixed top-marks judgments for handler tests.
type canonicalJudge struct{}

func (canonicalJudge) ScorePVC(ctx context.Context, prompt string) (*judge.PVCScores, error) {
	return &judge.PVCScores{
		GoalClarity: 4, ContextSufficiency: 4, Specificity: 4,
		Structure: 4, Feasibility: 4,
	}, nil
}

func (canonicalJudge) ScoreSCOPE(ctx context.Context, prompt string) (*judge.ScopeVariables, error) {
	return &judge.ScopeVariables{
		Structure: 1, Hardness: 1, Density: 1, TokenEfficiency: 1,
	}, nil
}

func TestServeHealth(t *testing.T) {
	t.Parallel()

	mux := newServeMux(valuation.NewEngine(nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestServeBadges(t *testing.T) {
	t.Parallel()

	mux := newServeMux(valuation.NewEngine(nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/badges", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []badge.Badge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 12)
}

func TestServeAppraise_SingleMethod(t *testing.T) {
	t.Parallel()

	mux := newServeMux(valuation.NewEngine(nil))
	body := `{"mode":"VECTOR","score_safety":5}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/appraise", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var reports []valuation.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)

	calc, ok := reports[0].Calculations.(valuation.VECTORCalculation)
	require.True(t, ok)
	assert.Equal(t, valuation.StatusScrapAsset, calc.Status)
}

func TestServeAppraise_DefaultModeIsCore(t *testing.T) {
	t.Parallel()

	mux := newServeMux(valuation.NewEngine(canonicalJudge{}))
	body := `{"input_prompt":"` + strings.Repeat("a", 400) + `"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/appraise", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var reports []valuation.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 3)
	assert.Equal(t, valuation.MethodDLA, reports[0].Method)
	assert.Equal(t, valuation.MethodPVC, reports[1].Method)
	assert.Equal(t, valuation.MethodSCOPE, reports[2].Method)
}

func TestServeAppraise_BadRequests(t *testing.T) {
	t.Parallel()

	mux := newServeMux(valuation.NewEngine(nil))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"mode":`},
		{"unknown mode", `{"mode":"TURBO"}`},
		{"invalid telemetry", `{"mode":"DLA","hourly_wage":-5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/appraise", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServeAppraise_EngineFailure(t *testing.T) {
	t.Parallel()

	// CORE needs a judge; with none configured the whole batch fails.
	mux := newServeMux(valuation.NewEngine(nil))
	body := `{"mode":"CORE","input_prompt":"score this"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/appraise", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "valuation failed")
}
