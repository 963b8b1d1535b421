package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Address
	}{
		{
			name:  "full address",
			input: "123 Main St, Seattle, WA 98101",
			expected: Address{
				Street:  "123 Main St",
				City:    "Seattle",
				State:   "WA",
				ZipCode: "98101",
			},
		},
		{
			name:  "extra whitespace",
			input: " 400 Broad St ,  Seattle , WA 98109 ",
			expected: Address{
				Street:  "400 Broad St",
				City:    "Seattle",
				State:   "WA",
				ZipCode: "98109",
			},
		},
		{
			name:     "street only",
			input:    "123 Main St",
			expected: Address{Street: "123 Main St"},
		},
		{
			name:     "street and city without state segment",
			input:    "123 Main St, Bellevue",
			expected: Address{Street: "123 Main St", City: "Bellevue"},
		},
		{
			name:  "no zip in last segment",
			input: "123 Main St, Seattle, WA",
			expected: Address{
				Street: "123 Main St",
				City:   "Seattle",
				State:  "WA",
			},
		},
		{
			name:  "zip+4 takes first five digits",
			input: "123 Main St, Seattle, WA 98101-1234",
			expected: Address{
				Street:  "123 Main St",
				City:    "Seattle",
				State:   "WA -1234",
				ZipCode: "98101",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAddress(tt.input))
		})
	}
}

func TestDistrictBundleSentinels(t *testing.T) {
	unknown := NewUnknownBundle()
	assert.Equal(t, DistrictUnknown, unknown.LegislativeDistrict)
	assert.Equal(t, DistrictUnknown, unknown.SchoolDistrict)
	assert.False(t, unknown.HasResolvedField())

	notFound := NewNotFoundBundle()
	assert.Equal(t, DistrictNotFound, notFound.CongressionalDistrict)
	assert.Equal(t, DistrictNotFound, notFound.CountyCouncilDistrict)
	assert.False(t, notFound.HasResolvedField())

	partial := NewUnknownBundle()
	partial.LegislativeDistrict = "43"
	assert.True(t, partial.HasResolvedField())
	assert.True(t, IsResolved("43"))
	assert.False(t, IsResolved(DistrictUnknown))
	assert.False(t, IsResolved(DistrictNotFound))
	assert.False(t, IsResolved(""))
}

func TestDeriveLevel(t *testing.T) {
	tests := []struct {
		jurisdiction string
		expected     Level
	}{
		{"Legislative District 43", LevelState},
		{"Congressional District 7", LevelState},
		{"King County", LevelCounty},
		{"King County Council District 7", LevelCounty},
		{"City of Seattle", LevelCity},
		{"Town of Skykomish", LevelCity},
		{"Port of Seattle", LevelPort},
		{"Seattle School District No. 1", LevelSchool},
		{"Water District 90", LevelSpecial},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeriveLevel(tt.jurisdiction), tt.jurisdiction)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" State ")
	assert.NoError(t, err)
	assert.Equal(t, LevelState, level)

	_, err = ParseLevel("federal")
	assert.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, ErrInvalidLevel, domainErr.Code)
}
