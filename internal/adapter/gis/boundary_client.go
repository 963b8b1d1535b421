package gis

import (
	"civicvoter/internal/config"
	"civicvoter/internal/domain"
	"civicvoter/internal/metrics"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BoundaryClient implements domain.BoundaryService against ArcGIS MapServer
// layer query endpoints. Each configured layer carries an ordered attribute
// chain; the district identifier is the first non-empty attribute of the
// first returned feature.
type BoundaryClient struct {
	layers     map[domain.DistrictLayer]config.BoundaryLayerConfig
	httpClient *http.Client
}

// NewBoundaryClient builds a client from the lookup configuration.
func NewBoundaryClient(cfg config.LookupConfig) *BoundaryClient {
	return &BoundaryClient{
		layers: map[domain.DistrictLayer]config.BoundaryLayerConfig{
			domain.LayerLegislative:   cfg.Legislative,
			domain.LayerCongressional: cfg.Congressional,
			domain.LayerCountyCouncil: cfg.CountyCouncil,
			domain.LayerSchool:        cfg.School,
		},
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type queryResponse struct {
	Features []struct {
		Attributes map[string]any `json:"attributes"`
	} `json:"features"`
}

// DistrictAttribute runs a point-in-polygon query against the named layer and
// extracts the district identifier. Zero features yields ("", nil).
func (c *BoundaryClient) DistrictAttribute(ctx context.Context, layer domain.DistrictLayer, point domain.Coordinate) (string, error) {
	layerCfg, ok := c.layers[layer]
	if !ok || layerCfg.URL == "" {
		return "", fmt.Errorf("no boundary layer configured for %q", layer)
	}

	params := url.Values{}
	params.Set("f", "json")
	params.Set("geometry", fmt.Sprintf("%f,%f", point.X, point.Y))
	params.Set("geometryType", "esriGeometryPoint")
	params.Set("inSR", "4326")
	params.Set("spatialRel", "esriSpatialRelIntersects")
	params.Set("outFields", "*")
	params.Set("returnGeometry", "false")

	endpoint := layerCfg.URL + "/query?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build boundary query for %q: %w", layer, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ExternalLookupDuration.WithLabelValues(string(layer)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalLookupFailures.WithLabelValues(string(layer)).Inc()
		return "", fmt.Errorf("boundary query for %q failed: %w", layer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ExternalLookupFailures.WithLabelValues(string(layer)).Inc()
		return "", fmt.Errorf("boundary query for %q returned status %d", layer, resp.StatusCode)
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.ExternalLookupFailures.WithLabelValues(string(layer)).Inc()
		return "", fmt.Errorf("failed to decode boundary response for %q: %w", layer, err)
	}

	if len(body.Features) == 0 {
		return "", nil
	}

	return extractAttribute(body.Features[0].Attributes, layerCfg.Attributes), nil
}

// extractAttribute walks the configured attribute chain and returns the first
// non-empty value, formatted as a string. GIS layers are inconsistent about
// attribute names and types (NAME vs SCHDST vs DSTNUM, strings vs numbers),
// so the chain is configuration, not reflection.
func extractAttribute(attributes map[string]any, chain []string) string {
	for _, name := range chain {
		raw, ok := attributes[name]
		if !ok || raw == nil {
			continue
		}
		if value := formatAttribute(raw); value != "" {
			return value
		}
	}
	return ""
}

func formatAttribute(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
