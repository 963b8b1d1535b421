package domain

import "strings"

// Level is the election level a candidate or quiz question belongs to.
type Level string

const (
	LevelState   Level = "state"
	LevelCounty  Level = "county"
	LevelCity    Level = "city"
	LevelPort    Level = "port"
	LevelSchool  Level = "school"
	LevelSpecial Level = "special"
)

// Levels lists all election levels in ballot priority order.
var Levels = []Level{LevelState, LevelCounty, LevelCity, LevelSchool, LevelPort, LevelSpecial}

// ParseLevel validates a level string from the API surface.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", NewInvalidLevelError(s)
}

// Policy is a candidate's declared position in one policy area. Category is
// matched against quiz question categories by string equality.
type Policy struct {
	Category string `json:"category"`
	Position string `json:"position"`
	Details  string `json:"details"`
}

// Candidate is one row of the candidate dataset. Jurisdiction is an opaque
// free-text label ("Legislative District 43", "City of Seattle"); the system
// never parses it into a structured (type, number) pair. Records are immutable
// once loaded and IDs are stable only within one dataset load.
type Candidate struct {
	ID           string `json:"id"`
	Jurisdiction string `json:"jurisdiction"`
	BallotTitle  string `json:"ballot_title"`
	Name         string `json:"name"`
	Party        string `json:"party"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	ElectedExperience      string `json:"elected_experience,omitempty"`
	ProfessionalExperience string `json:"professional_experience,omitempty"`
	Education              string `json:"education,omitempty"`
	CommunityService       string `json:"community_service,omitempty"`
	Statement              string `json:"statement,omitempty"`

	Level    Level    `json:"level"`
	Policies []Policy `json:"policies,omitempty"`
}

// PolicyFor returns the candidate's declared policy for a category, or nil.
func (c *Candidate) PolicyFor(category string) *Policy {
	for i := range c.Policies {
		if c.Policies[i].Category == category {
			return &c.Policies[i]
		}
	}
	return nil
}

// DeriveLevel maps a free-text jurisdiction label onto an election level.
// The label itself stays opaque; this only inspects well-known prefixes the
// county uses when constructing jurisdiction names.
func DeriveLevel(jurisdiction string) Level {
	label := strings.ToLower(jurisdiction)
	switch {
	case strings.HasPrefix(label, "legislative district"),
		strings.HasPrefix(label, "congressional district"):
		return LevelState
	case strings.HasPrefix(label, "king county"):
		return LevelCounty
	case strings.HasPrefix(label, "city of"), strings.HasPrefix(label, "town of"):
		return LevelCity
	case strings.HasPrefix(label, "port of"):
		return LevelPort
	case strings.Contains(label, "school"):
		return LevelSchool
	default:
		return LevelSpecial
	}
}
