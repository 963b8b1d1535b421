package geocode

import (
	"civicvoter/internal/domain"
	"civicvoter/internal/metrics"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ArcGISGeocoder implements domain.Geocoder against an ArcGIS GeocodeServer
// endpoint using the single-line findAddressCandidates operation.
type ArcGISGeocoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewArcGISGeocoder creates a geocoder for the given GeocodeServer base URL.
// The timeout bounds each outbound call; the upstream service itself imposes
// no limit.
func NewArcGISGeocoder(baseURL string, timeout time.Duration) (*ArcGISGeocoder, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("geocoder base URL cannot be empty")
	}
	return &ArcGISGeocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type geocodeResponse struct {
	Candidates []struct {
		Address  string  `json:"address"`
		Score    float64 `json:"score"`
		Location struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"location"`
	} `json:"candidates"`
}

// Geocode resolves a single-line address to the highest-confidence candidate
// coordinate. Zero candidates yields (nil, nil).
func (g *ArcGISGeocoder) Geocode(ctx context.Context, singleLine string) (*domain.Coordinate, error) {
	if singleLine == "" {
		return nil, domain.NewInvalidInputError("address text cannot be empty")
	}

	params := url.Values{}
	params.Set("f", "json")
	params.Set("singleLine", singleLine)
	params.Set("outFields", "Match_addr")
	params.Set("maxLocations", "1")

	endpoint := g.baseURL + "/findAddressCandidates?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	metrics.ExternalLookupDuration.WithLabelValues("geocoder").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalLookupFailures.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ExternalLookupFailures.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.ExternalLookupFailures.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(body.Candidates) == 0 {
		return nil, nil
	}

	top := body.Candidates[0]
	return &domain.Coordinate{X: top.Location.X, Y: top.Location.Y}, nil
}
