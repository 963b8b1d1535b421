package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/middleware"
	"civicvoter/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler_ResolveAddress(t *testing.T) {
	app := newTestApp()
	h := NewAddressHandler(&mockDistrictService{
		resolveFn: func(ctx context.Context, sessionID, addressText string) (*dto.ResolveAddressResponse, error) {
			assert.Equal(t, "sess-1", sessionID)
			return &dto.ResolveAddressResponse{
				Input:     addressText,
				Districts: domain.DistrictBundle{LegislativeDistrict: "43", CongressionalDistrict: "7", CountyCouncilDistrict: "7", SchoolDistrict: "Seattle Public Schools"},
				Source:    dto.SourceLive,
			}, nil
		},
	}, nil)
	app.Post("/api/address/resolve", middleware.RequireSession(), h.ResolveAddress)

	req := httptest.NewRequest(http.MethodPost, "/api/address/resolve",
		strings.NewReader(`{"address":"123 Main St, Seattle, WA 98101"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.ResolveAddressResponse](t, resp)
	assert.Equal(t, "43", body.Districts.LegislativeDistrict)
	assert.Equal(t, dto.SourceLive, body.Source)
}

func TestAddressHandler_ResolveAddress_ValidationError(t *testing.T) {
	app := newTestApp()
	h := NewAddressHandler(&mockDistrictService{
		resolveFn: func(ctx context.Context, sessionID, addressText string) (*dto.ResolveAddressResponse, error) {
			return nil, domain.ValidationErrors{domain.NewMissingFieldError("address")}
		},
	}, nil)
	app.Post("/api/address/resolve", middleware.RequireSession(), h.ResolveAddress)

	req := httptest.NewRequest(http.MethodPost, "/api/address/resolve", strings.NewReader(`{"address":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[middleware.ValidationErrorResponse](t, resp)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "address", body.Errors[0].Field)
}

func TestAddressHandler_GetAddress(t *testing.T) {
	app := newTestApp()
	h := NewAddressHandler(&mockDistrictService{}, &mockSessionService{
		getAddressFn: func(ctx context.Context, sessionID string) (*service.SavedAddress, error) {
			return &service.SavedAddress{
				Input:  "123 Main St, Seattle, WA 98101",
				Source: dto.SourceLive,
			}, nil
		},
	})
	app.Get("/api/address", middleware.RequireSession(), h.GetAddress)

	req := httptest.NewRequest(http.MethodGet, "/api/address", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.SavedAddressResponse](t, resp)
	assert.Equal(t, "123 Main St, Seattle, WA 98101", body.Input)
}

func TestAddressHandler_GetAddress_NoneSaved(t *testing.T) {
	app := newTestApp()
	h := NewAddressHandler(&mockDistrictService{}, &mockSessionService{
		getAddressFn: func(ctx context.Context, sessionID string) (*service.SavedAddress, error) {
			return nil, nil
		},
	})
	app.Get("/api/address", middleware.RequireSession(), h.GetAddress)

	req := httptest.NewRequest(http.MethodGet, "/api/address", nil)
	req.Header.Set(middleware.SessionIDHeader, "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddressHandler_GetFallbackDistricts(t *testing.T) {
	app := newTestApp()
	h := NewAddressHandler(&mockDistrictService{
		fallbackFn: func(zip string) *dto.FallbackDistrictsResponse {
			return &dto.FallbackDistrictsResponse{
				ZipCode: zip,
				Found:   zip == "98101",
				Districts: domain.FallbackDistricts{
					Legislative: "43", Congressional: "7", CountyCouncil: "7", School: "Seattle Public Schools",
				},
			}
		},
	}, nil)
	app.Get("/api/districts/fallback/:zip", h.GetFallbackDistricts)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/districts/fallback/98101", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.FallbackDistrictsResponse](t, resp)
	assert.True(t, body.Found)
	assert.Equal(t, "43", body.Districts.Legislative)
}
