package service

import (
	"context"
	"testing"
	"time"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDistrictFixture() (*MockGeocoder, *MockBoundaryService, SessionService, DistrictService) {
	geocoder := new(MockGeocoder)
	boundaries := new(MockBoundaryService)
	sessions := NewSessionService(newFakeCache(), time.Hour)
	svc := NewDistrictService(geocoder, boundaries, repository.NewFallbackTable(), sessions)
	return geocoder, boundaries, sessions, svc
}

func expectBoundary(boundaries *MockBoundaryService, layer domain.DistrictLayer, value string, err error) {
	boundaries.On("DistrictAttribute", mock.Anything, layer, mock.Anything).Return(value, err)
}

func TestDistrictService_Resolve_Live(t *testing.T) {
	geocoder, boundaries, sessions, svc := newDistrictFixture()

	geocoder.On("Geocode", mock.Anything, "123 Main St, Seattle, WA 98101").
		Return(&domain.Coordinate{X: -122.334, Y: 47.606}, nil)
	expectBoundary(boundaries, domain.LayerLegislative, "43", nil)
	expectBoundary(boundaries, domain.LayerCongressional, "7", nil)
	expectBoundary(boundaries, domain.LayerCountyCouncil, "8", nil)
	expectBoundary(boundaries, domain.LayerSchool, "Seattle Public Schools", nil)

	resp, err := svc.Resolve(context.Background(), "sess", "123 Main St, Seattle, WA 98101")
	require.NoError(t, err)

	assert.Equal(t, dto.SourceLive, resp.Source)
	assert.False(t, resp.Stale)
	assert.False(t, resp.NeedsAuthoritativeLookup)
	assert.Equal(t, "43", resp.Districts.LegislativeDistrict)
	assert.Equal(t, "Seattle Public Schools", resp.Districts.SchoolDistrict)
	assert.Equal(t, "Seattle", resp.Address.City)

	// The resolved bundle is persisted on the session.
	saved, err := sessions.GetAddress(context.Background(), "sess")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, resp.Districts, saved.Districts)
}

func TestDistrictService_Resolve_PartialBoundaryFailure(t *testing.T) {
	geocoder, boundaries, _, svc := newDistrictFixture()

	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(&domain.Coordinate{X: -122.3, Y: 47.6}, nil)
	expectBoundary(boundaries, domain.LayerLegislative, "", assert.AnError)
	expectBoundary(boundaries, domain.LayerCongressional, "9", nil)
	expectBoundary(boundaries, domain.LayerCountyCouncil, "", nil)
	expectBoundary(boundaries, domain.LayerSchool, "Kent School District", nil)

	resp, err := svc.Resolve(context.Background(), "sess", "500 Oak Ave, Kent, WA 99999")
	require.NoError(t, err)

	// A failed layer degrades that one field without aborting the rest.
	assert.Equal(t, domain.DistrictUnknown, resp.Districts.LegislativeDistrict)
	assert.Equal(t, domain.DistrictUnknown, resp.Districts.CountyCouncilDistrict)
	assert.Equal(t, "9", resp.Districts.CongressionalDistrict)
	assert.Equal(t, "Kent School District", resp.Districts.SchoolDistrict)
	assert.Equal(t, dto.SourceLive, resp.Source)
}

func TestDistrictService_Resolve_SchoolFallback(t *testing.T) {
	geocoder, boundaries, _, svc := newDistrictFixture()

	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(&domain.Coordinate{X: -122.334, Y: 47.606}, nil)
	expectBoundary(boundaries, domain.LayerLegislative, "43", nil)
	expectBoundary(boundaries, domain.LayerCongressional, "7", nil)
	expectBoundary(boundaries, domain.LayerCountyCouncil, "7", nil)
	expectBoundary(boundaries, domain.LayerSchool, "", nil)

	resp, err := svc.Resolve(context.Background(), "sess", "123 Main St, Seattle, WA 98101")
	require.NoError(t, err)

	// The school field alone is patched from the ZIP table.
	assert.Equal(t, "Seattle Public Schools", resp.Districts.SchoolDistrict)
	assert.Equal(t, dto.SourceMixed, resp.Source)
}

func TestDistrictService_Resolve_GeocodeFailsWithFallback(t *testing.T) {
	geocoder, _, _, svc := newDistrictFixture()

	geocoder.On("Geocode", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	resp, err := svc.Resolve(context.Background(), "sess", "123 Main St, Seattle, WA 98101")
	require.NoError(t, err)

	assert.Equal(t, dto.SourceFallback, resp.Source)
	assert.True(t, resp.NeedsAuthoritativeLookup)
	assert.Equal(t, "43", resp.Districts.LegislativeDistrict)
	assert.Equal(t, "7", resp.Districts.CongressionalDistrict)
	assert.Equal(t, "7", resp.Districts.CountyCouncilDistrict)
	assert.Equal(t, "Seattle Public Schools", resp.Districts.SchoolDistrict)
}

func TestDistrictService_Resolve_GeocodeFailsNoFallback(t *testing.T) {
	geocoder, _, _, svc := newDistrictFixture()

	geocoder.On("Geocode", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := svc.Resolve(context.Background(), "sess", "1 Nowhere Rd, Elsewhere, ZZ 00000")
	require.NoError(t, err)

	assert.Equal(t, dto.SourceNone, resp.Source)
	assert.True(t, resp.NeedsAuthoritativeLookup)
	assert.Equal(t, domain.NewNotFoundBundle(), resp.Districts)
}

func TestDistrictService_Resolve_StaleDiscarded(t *testing.T) {
	geocoder, _, sessions, svc := newDistrictFixture()

	// A second submission arrives while this resolution's lookups are in
	// flight; the stale result must not be persisted.
	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = sessions.NextResolutionToken(context.Background(), "sess")
		}).
		Return(nil, assert.AnError)

	resp, err := svc.Resolve(context.Background(), "sess", "123 Main St, Seattle, WA 98101")
	require.NoError(t, err)
	assert.True(t, resp.Stale)

	saved, err := sessions.GetAddress(context.Background(), "sess")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestDistrictService_Resolve_EmptyAddress(t *testing.T) {
	_, _, _, svc := newDistrictFixture()

	_, err := svc.Resolve(context.Background(), "sess", "   ")
	var validationErrs domain.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "address", validationErrs[0].Field)
}

func TestDistrictService_FallbackDistricts(t *testing.T) {
	_, _, _, svc := newDistrictFixture()

	resp := svc.FallbackDistricts("98101")
	assert.True(t, resp.Found)
	assert.Equal(t, "43", resp.Districts.Legislative)

	resp = svc.FallbackDistricts("00000")
	assert.False(t, resp.Found)
}
