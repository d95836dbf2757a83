package domain

import "time"

// DateInterval is a closed interval [Start, End] at day granularity. Both
// bounds must already be normalized to the same day boundary (see AtDay),
// otherwise DST offsets produce off-by-one-hour comparisons.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two intervals share at least one day.
// Touching counts as overlap: [1,5] and [5,9] overlap on day 5.
func (i DateInterval) Overlaps(other DateInterval) bool {
	return !i.Start.After(other.End) && !other.Start.After(i.End)
}

// Contains reports whether other lies entirely inside i.
func (i DateInterval) Contains(other DateInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Days возвращает длину интервала в днях, включая обе границы.
func (i DateInterval) Days() int {
	return int(i.End.Sub(i.Start).Hours()/24) + 1
}

// Nights returns the number of nights, i.e. Days()-1 but never below zero.
func (i DateInterval) Nights() int {
	n := i.Days() - 1
	if n < 0 {
		return 0
	}
	return n
}

// AtDay normalizes t to midnight of its calendar day in loc. Every component
// that compares dates goes through this so the comparison happens on one
// reference day boundary.
func AtDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return AtDay(a, loc).Equal(AtDay(b, loc))
}
