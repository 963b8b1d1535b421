package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestBallotHandler_ListElections(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{
		electionsFn: func(now time.Time) []dto.ElectionResponse {
			return []dto.ElectionResponse{{ID: "nov-2025", Name: "2025 November General Election", DaysUntil: 12}}
		},
	}, nil)
	app.Get("/api/elections", h.ListElections)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/elections", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	elections := decodeBody[[]dto.ElectionResponse](t, resp)
	require.Len(t, elections, 1)
	assert.Equal(t, "nov-2025", elections[0].ID)
}

func TestBallotHandler_ListCandidates(t *testing.T) {
	app := newTestApp()
	var gotSession, gotLevel string
	var gotRelevant bool
	h := NewBallotHandler(&mockBallotService{
		listFn: func(ctx context.Context, sessionID, level string, relevantOnly bool) (*dto.CandidateListResponse, error) {
			gotSession, gotLevel, gotRelevant = sessionID, level, relevantOnly
			return &dto.CandidateListResponse{Level: level, Filtered: relevantOnly, Candidates: []dto.CandidateResponse{{ID: "0"}}}, nil
		},
	}, nil)
	app.Get("/api/candidates", middleware.RequireSession(), h.ListCandidates)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?level=city&relevant=true", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sess-1", gotSession)
	assert.Equal(t, "city", gotLevel)
	assert.True(t, gotRelevant)
}

func TestBallotHandler_ListCandidates_MissingSession(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{}, nil)
	app.Get("/api/candidates", middleware.RequireSession(), h.ListCandidates)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[middleware.ErrorResponse](t, resp)
	assert.Equal(t, string(domain.ErrSessionRequired), body.Code)
}

func TestBallotHandler_ListCandidates_InvalidLevel(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{
		listFn: func(ctx context.Context, sessionID, level string, relevantOnly bool) (*dto.CandidateListResponse, error) {
			return nil, domain.NewInvalidLevelError(level)
		},
	}, nil)
	app.Get("/api/candidates", middleware.RequireSession(), h.ListCandidates)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?level=federal", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBallotHandler_ListCandidates_DatasetUnavailable(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{
		listFn: func(ctx context.Context, sessionID, level string, relevantOnly bool) (*dto.CandidateListResponse, error) {
			return nil, domain.NewDatasetUnavailableError(assert.AnError)
		},
	}, nil)
	app.Get("/api/candidates", middleware.RequireSession(), h.ListCandidates)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestBallotHandler_ToggleSelection(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{}, &mockSelectionService{
		toggleFn: func(ctx context.Context, sessionID string, req dto.ToggleSelectionRequest) (*dto.SelectionResponse, error) {
			return &dto.SelectionResponse{Level: req.Level, CandidateIDs: []string{req.CandidateID}, Changed: true}, nil
		},
	})
	app.Post("/api/selection/toggle", middleware.RequireSession(), h.ToggleSelection)

	req := httptest.NewRequest(http.MethodPost, "/api/selection/toggle",
		strings.NewReader(`{"level":"city","candidate_id":"3"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.SelectionResponse](t, resp)
	assert.True(t, body.Changed)
	assert.Equal(t, []string{"3"}, body.CandidateIDs)
}

func TestBallotHandler_ToggleSelection_BadBody(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{}, &mockSelectionService{})
	app.Post("/api/selection/toggle", middleware.RequireSession(), h.ToggleSelection)

	req := httptest.NewRequest(http.MethodPost, "/api/selection/toggle", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBallotHandler_CompareSelection(t *testing.T) {
	app := newTestApp()
	h := NewBallotHandler(&mockBallotService{}, &mockSelectionService{
		compareFn: func(ctx context.Context, sessionID string) (*dto.CompareResponse, error) {
			return &dto.CompareResponse{
				Level:      "city",
				Candidates: []dto.CandidateResponse{{ID: "0"}, {ID: "1"}},
				Categories: []string{"Homelessness"},
			}, nil
		},
	})
	app.Get("/api/selection/compare", middleware.RequireSession(), h.CompareSelection)

	req := httptest.NewRequest(http.MethodGet, "/api/selection/compare", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.CompareResponse](t, resp)
	assert.Len(t, body.Candidates, 2)
	assert.Equal(t, []string{"Homelessness"}, body.Categories)
}
