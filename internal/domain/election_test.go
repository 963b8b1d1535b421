package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElectionDaysUntil(t *testing.T) {
	e := Election{ID: "nov-2026", Date: "2026-11-03", Type: ElectionFuture}

	// Partial days round up.
	now := time.Date(2026, time.October, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, e.DaysUntil(now))

	// Exact midnight on the date itself is zero days away.
	assert.Equal(t, 0, e.DaysUntil(time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)))

	// Past dates go negative.
	assert.Negative(t, e.DaysUntil(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)))

	// Unparseable dates degrade to zero.
	bad := Election{Date: "someday"}
	assert.Zero(t, bad.DaysUntil(now))
}
