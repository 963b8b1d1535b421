package domain

import (
	"regexp"
	"strings"
)

// Sentinel values for unresolved district fields. Every DistrictBundle field
// always carries one of these or a real district identifier, never an empty
// string, so downstream filtering and rendering stay uniform.
const (
	// DistrictUnknown means the live lookup returned no feature for the field
	// but the ZIP fallback table may still apply.
	DistrictUnknown = "Unknown"

	// DistrictNotFound means neither the live lookup nor the fallback table
	// produced a value.
	DistrictNotFound = "Not found"
)

// DistrictBundle is the resolved set of electoral district identifiers for one
// address. It is created once per address submission and overwritten wholesale
// on the next one, never partially mutated.
type DistrictBundle struct {
	LegislativeDistrict   string `json:"legislative_district"`
	CongressionalDistrict string `json:"congressional_district"`
	CountyCouncilDistrict string `json:"county_council_district"`
	SchoolDistrict        string `json:"school_district"`
}

// NewUnknownBundle returns a bundle with every field set to DistrictUnknown.
func NewUnknownBundle() DistrictBundle {
	return DistrictBundle{
		LegislativeDistrict:   DistrictUnknown,
		CongressionalDistrict: DistrictUnknown,
		CountyCouncilDistrict: DistrictUnknown,
		SchoolDistrict:        DistrictUnknown,
	}
}

// NewNotFoundBundle returns a bundle with every field set to DistrictNotFound.
func NewNotFoundBundle() DistrictBundle {
	return DistrictBundle{
		LegislativeDistrict:   DistrictNotFound,
		CongressionalDistrict: DistrictNotFound,
		CountyCouncilDistrict: DistrictNotFound,
		SchoolDistrict:        DistrictNotFound,
	}
}

// IsResolved reports whether a field value is a real district identifier
// rather than one of the sentinels.
func IsResolved(field string) bool {
	return field != "" && field != DistrictUnknown && field != DistrictNotFound
}

// HasResolvedField reports whether at least one district field resolved.
func (b DistrictBundle) HasResolvedField() bool {
	return IsResolved(b.LegislativeDistrict) ||
		IsResolved(b.CongressionalDistrict) ||
		IsResolved(b.CountyCouncilDistrict) ||
		IsResolved(b.SchoolDistrict)
}

// Address is the best-effort decomposition of a free-text address line. It is
// not validated beyond comma segmentation; a missing segment is an empty
// string.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

var zipPattern = regexp.MustCompile(`\d{5}`)

// ParseAddress splits a single-line address on commas: street, city, then a
// trailing state/ZIP segment. The ZIP is the first 5-digit run in the last
// segment. "123 Main St, Seattle, WA 98101" yields street "123 Main St",
// city "Seattle", state "WA", ZIP "98101".
func ParseAddress(text string) Address {
	var addr Address
	segments := strings.Split(text, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	if len(segments) > 0 {
		addr.Street = segments[0]
	}
	if len(segments) > 1 {
		addr.City = segments[1]
	}
	if len(segments) > 2 {
		last := segments[len(segments)-1]
		addr.ZipCode = zipPattern.FindString(last)
		addr.State = strings.TrimSpace(strings.Replace(last, addr.ZipCode, "", 1))
	}
	return addr
}
