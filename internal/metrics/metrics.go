package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "address_resolutions_total",
			Help: "Total number of address resolutions by outcome",
		},
		[]string{"outcome"},
	)

	ExternalLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "external_lookup_duration_seconds",
			Help: "Duration of external geocoding and boundary lookups in seconds",
		},
		[]string{"service"},
	)

	ExternalLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_lookup_failures_total",
			Help: "Total number of failed external lookups",
		},
		[]string{"service"},
	)
)

// Resolution outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
	OutcomeNotFound = "not_found"
	OutcomeStale    = "stale_discarded"
)
