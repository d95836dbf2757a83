package domain

import "time"

// Google Calendar color ids are small integers serialized as strings.
const (
	// ColorInformational marks an event that must not block availability
	// and never appears in conflicts.
	ColorInformational = "8"

	// ColorLinkedFallback is applied to a linked group when no member
	// carries a non-default color of its own.
	ColorLinkedFallback = "5"

	// ColorBooking is the canonical color of events owned by bookings.
	ColorBooking = "9"
)

// GroupColorPalette are the colors handed out to events freed by an unlink,
// so a former group stops looking like one. The reserved informational and
// booking colors are excluded.
var GroupColorPalette = []string{"1", "2", "3", "4", "6", "7", "10", "11"}

// CalendarEvent is an external calendar entry after adapter normalization:
// EndDate is inclusive, both dates sit on the property day boundary.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	ColorID     string    `json:"color_id,omitempty"`
}

// Informational reports whether the event carries the reserved non-blocking color.
func (e *CalendarEvent) Informational() bool {
	return e.ColorID == ColorInformational
}

func (e *CalendarEvent) Interval() DateInterval {
	return DateInterval{Start: e.StartDate, End: e.EndDate}
}

// EventPatch is a partial update pushed to the external calendar. Nil fields
// are left untouched upstream.
type EventPatch struct {
	Summary     *string
	Description *string
	ColorID     *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Empty reports whether the patch would change nothing.
func (p EventPatch) Empty() bool {
	return p.Summary == nil && p.Description == nil && p.ColorID == nil &&
		p.StartDate == nil && p.EndDate == nil
}

// LinkedEventPair is one persisted edge of the "same logical occupancy"
// relation between two external events. Edges are stored once per unordered
// pair; group membership is always recomputed by traversal, there is no
// group id.
type LinkedEventPair struct {
	EventID1 string `json:"event_id_1"`
	EventID2 string `json:"event_id_2"`
}
