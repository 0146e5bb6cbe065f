package model

import "time"

// DateRange is a half-open calendar-date interval [Start, End). Times are expected
// to be date-resolution (midnight); comparisons are date comparisons, not timestamps.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the range covers at least one night, i.e. End is strictly
// after Start.
func (r DateRange) IsValid() bool {
	return r.End.After(r.Start)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Two ranges overlap unless one ends at or before the other starts, so back-to-back
// stays (one checks out the day the other checks in) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return other.End.After(r.Start) && other.Start.Before(r.End)
}

// Nights returns the number of nights the range covers.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}
