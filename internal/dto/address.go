package dto

import "civicvoter/internal/domain"

// ResolveAddressRequest is the payload for POST /api/address/resolve.
type ResolveAddressRequest struct {
	Address string `json:"address" example:"123 Main St, Seattle, WA 98101"`
}

// District sources reported on a resolution response.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
	SourceMixed    = "mixed"
	SourceNone     = "none"
)

// ResolveAddressResponse carries the outcome of one address resolution.
// Stale marks a result that lost to a newer submission on the same session;
// stale results are returned for transparency but never persisted.
type ResolveAddressResponse struct {
	Input     string                `json:"input"`
	Address   domain.Address        `json:"address"`
	Districts domain.DistrictBundle `json:"districts"`
	Source    string                `json:"source"`
	// NeedsAuthoritativeLookup is set when resolution was inconclusive and
	// the user should consult the official district finder.
	NeedsAuthoritativeLookup bool `json:"needs_authoritative_lookup"`
	Stale                    bool `json:"stale"`
}

// SavedAddressResponse is the stored address state for GET /api/address.
type SavedAddressResponse struct {
	Input     string                `json:"input"`
	Address   domain.Address        `json:"address"`
	Districts domain.DistrictBundle `json:"districts"`
	Source    string                `json:"source"`
}

// FallbackDistrictsResponse is the static table row for one ZIP code.
type FallbackDistrictsResponse struct {
	ZipCode   string                   `json:"zip_code"`
	Found     bool                     `json:"found"`
	Districts domain.FallbackDistricts `json:"districts"`
}
