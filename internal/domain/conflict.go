package domain

import (
	"fmt"
	"sort"
	"strings"
)

type ConflictType string

const (
	ConflictOverlappingBookings ConflictType = "OVERLAPPING_BOOKINGS"
	ConflictBookingVsCalendar   ConflictType = "BOOKING_CALENDAR_EVENT"
	ConflictCalendarEvents      ConflictType = "OVERLAPPING_CALENDAR_EVENTS"
)

type ConflictSeverity string

const (
	SeverityMedium ConflictSeverity = "MEDIUM"
	SeverityHigh   ConflictSeverity = "HIGH"
)

// Conflict is a closed sum over the three conflict kinds. Each kind carries
// exactly the entities it involves, nothing optional.
type Conflict interface {
	Type() ConflictType
	// Key is the stable, order-independent identifier of the involved
	// entity set, used for ignore/notify dedup.
	Key() string
	Severity() ConflictSeverity
	Description() string
}

// ConflictKey joins the sorted ids with hyphens.
func ConflictKey(ids ...string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "-")
}

// BookingOverlapConflict: two or more internal bookings occupy overlapping dates.
type BookingOverlapConflict struct {
	Bookings []Booking `json:"bookings"`
	// Potential is set for two-party overlaps where at least one side is
	// still pending.
	Potential bool `json:"potential"`
}

func (c *BookingOverlapConflict) Type() ConflictType { return ConflictOverlappingBookings }

func (c *BookingOverlapConflict) Key() string {
	ids := make([]string, len(c.Bookings))
	for i, b := range c.Bookings {
		ids[i] = b.ID
	}
	return ConflictKey(ids...)
}

func (c *BookingOverlapConflict) Severity() ConflictSeverity {
	if len(c.Bookings) >= 3 {
		return SeverityHigh
	}
	if c.Potential {
		return SeverityMedium
	}
	return SeverityHigh
}

func (c *BookingOverlapConflict) Description() string {
	names := make([]string, len(c.Bookings))
	for i, b := range c.Bookings {
		names[i] = b.GuestName
	}
	return fmt.Sprintf("%d bookings overlap: %s", len(c.Bookings), strings.Join(names, ", "))
}

// BookingEventConflict: a booking collides with an unrelated external event.
type BookingEventConflict struct {
	Booking Booking       `json:"booking"`
	Event   CalendarEvent `json:"event"`
}

func (c *BookingEventConflict) Type() ConflictType { return ConflictBookingVsCalendar }

func (c *BookingEventConflict) Key() string {
	return ConflictKey(c.Booking.ID, c.Event.ID)
}

func (c *BookingEventConflict) Severity() ConflictSeverity { return SeverityHigh }

func (c *BookingEventConflict) Description() string {
	return fmt.Sprintf("booking of %s overlaps calendar event %q", c.Booking.GuestName, c.Event.Summary)
}

// EventOverlapConflict: unrelated external events overlap and are not one
// linked group.
type EventOverlapConflict struct {
	Events []CalendarEvent `json:"events"`
}

func (c *EventOverlapConflict) Type() ConflictType { return ConflictCalendarEvents }

func (c *EventOverlapConflict) Key() string {
	ids := make([]string, len(c.Events))
	for i, e := range c.Events {
		ids[i] = e.ID
	}
	return ConflictKey(ids...)
}

func (c *EventOverlapConflict) Severity() ConflictSeverity { return SeverityHigh }

func (c *EventOverlapConflict) Description() string {
	titles := make([]string, len(c.Events))
	for i, e := range c.Events {
		titles[i] = fmt.Sprintf("%q", e.Summary)
	}
	return fmt.Sprintf("%d calendar events overlap: %s", len(c.Events), strings.Join(titles, ", "))
}
