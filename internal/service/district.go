package service

import (
	"context"
	"strings"
	"sync"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/logger"
	"civicvoter/internal/metrics"
	"civicvoter/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DistrictService resolves free-text addresses into district bundles.
type DistrictService interface {
	// Resolve geocodes the address, queries the district-boundary layers and
	// consults the ZIP fallback table, then persists the outcome on the
	// session. A resolution that lost to a newer submission on the same
	// session is returned with Stale set and is not persisted.
	Resolve(ctx context.Context, sessionID, addressText string) (*dto.ResolveAddressResponse, error)

	// FallbackDistricts exposes the static ZIP table directly.
	FallbackDistricts(zip string) *dto.FallbackDistrictsResponse
}

type districtService struct {
	geocoder   domain.Geocoder
	boundaries domain.BoundaryService
	fallback   *repository.FallbackTable
	sessions   SessionService
}

func NewDistrictService(
	geocoder domain.Geocoder,
	boundaries domain.BoundaryService,
	fallback *repository.FallbackTable,
	sessions SessionService,
) DistrictService {
	return &districtService{
		geocoder:   geocoder,
		boundaries: boundaries,
		fallback:   fallback,
		sessions:   sessions,
	}
}

func (s *districtService) Resolve(ctx context.Context, sessionID, addressText string) (*dto.ResolveAddressResponse, error) {
	addressText = strings.TrimSpace(addressText)
	if addressText == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("address")}
	}

	parsed := domain.ParseAddress(addressText)

	token, err := s.sessions.NextResolutionToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bundle, source, lowConfidence := s.resolveBundle(ctx, addressText, parsed.ZipCode)

	// A second submission on the same session may have been issued while the
	// external lookups were in flight; only the latest token's result is
	// applied.
	current, err := s.sessions.CurrentResolutionToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current != token {
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeStale).Inc()
		logger.Get().Info("Discarding stale address resolution",
			zap.String("sessionID", sessionID),
			zap.Int64("token", token),
			zap.Int64("current", current))
		return &dto.ResolveAddressResponse{
			Input:                    addressText,
			Address:                  parsed,
			Districts:                bundle,
			Source:                   source,
			NeedsAuthoritativeLookup: lowConfidence,
			Stale:                    true,
		}, nil
	}

	record := SavedAddress{
		Input:     addressText,
		Address:   parsed,
		Districts: bundle,
		Source:    source,
	}
	if err := s.sessions.SaveAddress(ctx, sessionID, record); err != nil {
		return nil, err
	}

	switch {
	case !bundle.HasResolvedField():
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
	case source == dto.SourceFallback:
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeFallback).Inc()
	default:
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeResolved).Inc()
	}

	return &dto.ResolveAddressResponse{
		Input:                    addressText,
		Address:                  parsed,
		Districts:                bundle,
		Source:                   source,
		NeedsAuthoritativeLookup: lowConfidence,
	}, nil
}

// resolveBundle runs the live geocode plus boundary-layer lookups and applies
// the ZIP fallback table. It never returns an error: every sub-call failure
// degrades to a sentinel field.
func (s *districtService) resolveBundle(ctx context.Context, addressText, zip string) (domain.DistrictBundle, string, bool) {
	point, err := s.geocoder.Geocode(ctx, addressText)
	if err != nil {
		logger.Get().Warn("Geocoding failed", zap.String("address", addressText), zap.Error(err))
	}

	if point == nil {
		// No coordinate to query with; the ZIP table is the only recourse.
		if entry, ok := s.fallback.Lookup(zip); ok {
			return fallbackBundle(entry), dto.SourceFallback, true
		}
		return domain.NewNotFoundBundle(), dto.SourceNone, true
	}

	bundle := s.queryBoundaries(ctx, *point)

	// School-district names are the flakiest layer; patch just that field
	// from the ZIP table when the live query came back empty.
	usedFallback := false
	if !domain.IsResolved(bundle.SchoolDistrict) {
		if entry, ok := s.fallback.Lookup(zip); ok && entry.School != "" {
			bundle.SchoolDistrict = entry.School
			usedFallback = true
		}
	}

	source := dto.SourceLive
	switch {
	case !bundle.HasResolvedField():
		source = dto.SourceNone
	case usedFallback:
		source = dto.SourceMixed
	}
	return bundle, source, !bundle.HasResolvedField()
}

// queryBoundaries fans out the four layer queries concurrently and joins all
// of them. A failed or empty query leaves its field "Unknown" and never
// aborts the other three.
func (s *districtService) queryBoundaries(ctx context.Context, point domain.Coordinate) domain.DistrictBundle {
	bundle := domain.NewUnknownBundle()

	var mu sync.Mutex
	assign := map[domain.DistrictLayer]*string{
		domain.LayerLegislative:   &bundle.LegislativeDistrict,
		domain.LayerCongressional: &bundle.CongressionalDistrict,
		domain.LayerCountyCouncil: &bundle.CountyCouncilDistrict,
		domain.LayerSchool:        &bundle.SchoolDistrict,
	}

	g, gctx := errgroup.WithContext(ctx)
	for layer, field := range assign {
		layer, field := layer, field
		g.Go(func() error {
			value, err := s.boundaries.DistrictAttribute(gctx, layer, point)
			if err != nil {
				logger.Get().Warn("Boundary query failed",
					zap.String("layer", string(layer)), zap.Error(err))
				return nil
			}
			if value != "" {
				mu.Lock()
				*field = value
				mu.Unlock()
			}
			return nil
		})
	}
	// Goroutines never return errors; Wait only joins them.
	_ = g.Wait()

	return bundle
}

func fallbackBundle(entry domain.FallbackDistricts) domain.DistrictBundle {
	bundle := domain.NewNotFoundBundle()
	if entry.Legislative != "" {
		bundle.LegislativeDistrict = entry.Legislative
	}
	if entry.Congressional != "" {
		bundle.CongressionalDistrict = entry.Congressional
	}
	if entry.CountyCouncil != "" {
		bundle.CountyCouncilDistrict = entry.CountyCouncil
	}
	if entry.School != "" {
		bundle.SchoolDistrict = entry.School
	}
	return bundle
}

func (s *districtService) FallbackDistricts(zip string) *dto.FallbackDistrictsResponse {
	entry, ok := s.fallback.Lookup(zip)
	return &dto.FallbackDistrictsResponse{
		ZipCode:   zip,
		Found:     ok,
		Districts: entry,
	}
}
