package domain

import "time"

// ElectionType classifies an election relative to today.
type ElectionType string

const (
	ElectionPast   ElectionType = "past"
	ElectionFuture ElectionType = "future"
)

// Election is one entry of the static election calendar.
type Election struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Date string       `json:"date"` // YYYY-MM-DD
	Type ElectionType `json:"type"`
}

// DaysUntil returns the number of whole days from now until the election
// date, rounded up. Past dates yield negative values; an unparseable date
// yields zero.
func (e Election) DaysUntil(now time.Time) int {
	date, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return 0
	}
	diff := date.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
