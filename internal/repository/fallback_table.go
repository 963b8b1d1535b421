package repository

import "civicvoter/internal/domain"

// FallbackTable is the static ZIP-keyed district table consulted when the
// live geocode/boundary lookup fails or leaves fields unresolved. It covers
// the county's major ZIP codes only; a missing key is expected and simply
// means no fallback data exists for that address.
type FallbackTable struct {
	entries map[string]domain.FallbackDistricts
}

// NewFallbackTable returns the built-in district table.
func NewFallbackTable() *FallbackTable {
	return &FallbackTable{entries: fallbackDistricts}
}

// Lookup returns the fallback districts for a 5-digit ZIP code. The second
// return value reports whether the ZIP is present in the table.
func (t *FallbackTable) Lookup(zip string) (domain.FallbackDistricts, bool) {
	entry, ok := t.entries[zip]
	return entry, ok
}

var fallbackDistricts = map[string]domain.FallbackDistricts{
	// Seattle
	"98101": {Legislative: "43", Congressional: "7", CountyCouncil: "7", School: "Seattle Public Schools"},
	"98102": {Legislative: "43", Congressional: "7", CountyCouncil: "4", School: "Seattle Public Schools"},
	"98103": {Legislative: "46", Congressional: "7", CountyCouncil: "4", School: "Seattle Public Schools"},
	"98105": {Legislative: "46", Congressional: "7", CountyCouncil: "4", School: "Seattle Public Schools"},
	"98109": {Legislative: "36", Congressional: "7", CountyCouncil: "4", School: "Seattle Public Schools"},
	"98112": {Legislative: "43", Congressional: "7", CountyCouncil: "3", School: "Seattle Public Schools"},
	"98115": {Legislative: "46", Congressional: "7", CountyCouncil: "2", School: "Seattle Public Schools"},
	"98118": {Legislative: "37", Congressional: "9", CountyCouncil: "2", School: "Seattle Public Schools"},
	"98144": {Legislative: "37", Congressional: "9", CountyCouncil: "2", School: "Seattle Public Schools"},

	// Eastside
	"98004": {Legislative: "48", Congressional: "9", CountyCouncil: "6", School: "Bellevue School District"},
	"98033": {Legislative: "48", Congressional: "1", CountyCouncil: "6", School: "Lake Washington School District"},
	"98052": {Legislative: "45", Congressional: "1", CountyCouncil: "3", School: "Lake Washington School District"},

	// South county
	"98031": {Legislative: "47", Congressional: "8", CountyCouncil: "5", School: "Kent School District"},
	"98055": {Legislative: "11", Congressional: "9", CountyCouncil: "5", School: "Renton School District"},
	"98092": {Legislative: "31", Congressional: "8", CountyCouncil: "7", School: "Auburn School District"},

	// North county
	"98155": {Legislative: "32", Congressional: "7", CountyCouncil: "1", School: "Shoreline School District"},
	"98028": {Legislative: "1", Congressional: "1", CountyCouncil: "1", School: "Northshore School District"},
}
