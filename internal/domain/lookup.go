package domain

import "context"

// Coordinate is a geocoded point in WGS84: X is longitude, Y is latitude.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geocoder turns a single-line address into a coordinate. Implementations
// return only the highest-confidence candidate; a nil coordinate with a nil
// error means the service returned zero candidates.
type Geocoder interface {
	Geocode(ctx context.Context, singleLine string) (*Coordinate, error)
}

// DistrictLayer names one of the district-boundary layers queried during
// address resolution.
type DistrictLayer string

const (
	LayerLegislative   DistrictLayer = "legislative"
	LayerCongressional DistrictLayer = "congressional"
	LayerCountyCouncil DistrictLayer = "county_council"
	LayerSchool        DistrictLayer = "school"
)

// BoundaryService answers point-in-polygon queries against a named district
// layer. An empty string with a nil error means the point fell inside no
// feature of the layer; the resolver treats errors the same way.
type BoundaryService interface {
	DistrictAttribute(ctx context.Context, layer DistrictLayer, point Coordinate) (string, error)
}

// FallbackDistricts is one row of the static ZIP-keyed district table used
// when the live lookup is unavailable or incomplete. Absence of a ZIP is an
// expected outcome, not an error.
type FallbackDistricts struct {
	Legislative   string `json:"legislative"`
	Congressional string `json:"congressional"`
	CountyCouncil string `json:"county_council"`
	School        string `json:"school"`
}

// CandidateRepository provides read access to the loaded candidate dataset.
type CandidateRepository interface {
	GetAll() ([]Candidate, error)
	GetByLevel(level Level) ([]Candidate, error)
	GetByID(id string) (*Candidate, error)
}

// QuestionRepository provides read access to the quiz question set.
type QuestionRepository interface {
	GetAll() []QuizQuestion
	GetByLevel(level Level) []QuizQuestion
	GetByID(id string) *QuizQuestion
}
