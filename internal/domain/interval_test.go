package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateInterval
		want bool
	}{
		{
			name: "disjoint",
			a:    DateInterval{day(2026, 6, 1), day(2026, 6, 5)},
			b:    DateInterval{day(2026, 6, 10), day(2026, 6, 15)},
			want: false,
		},
		{
			name: "touching end to start",
			a:    DateInterval{day(2026, 6, 1), day(2026, 6, 5)},
			b:    DateInterval{day(2026, 6, 5), day(2026, 6, 9)},
			want: true,
		},
		{
			name: "adjacent without shared day",
			a:    DateInterval{day(2026, 6, 1), day(2026, 6, 5)},
			b:    DateInterval{day(2026, 6, 6), day(2026, 6, 9)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    DateInterval{day(2026, 6, 1), day(2026, 6, 7)},
			b:    DateInterval{day(2026, 6, 5), day(2026, 6, 12)},
			want: true,
		},
		{
			name: "contained",
			a:    DateInterval{day(2026, 6, 1), day(2026, 6, 30)},
			b:    DateInterval{day(2026, 6, 10), day(2026, 6, 12)},
			want: true,
		},
		{
			name: "single day vs itself",
			a:    DateInterval{day(2026, 6, 3), day(2026, 6, 3)},
			b:    DateInterval{day(2026, 6, 3), day(2026, 6, 3)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateInterval_Contains(t *testing.T) {
	outer := DateInterval{day(2026, 7, 1), day(2026, 7, 20)}

	assert.True(t, outer.Contains(DateInterval{day(2026, 7, 5), day(2026, 7, 10)}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(DateInterval{day(2026, 6, 30), day(2026, 7, 3)}))
	assert.False(t, outer.Contains(DateInterval{day(2026, 7, 15), day(2026, 7, 21)}))
	assert.False(t, DateInterval{day(2026, 7, 5), day(2026, 7, 10)}.Contains(outer))
}

func TestDateInterval_DaysAndNights(t *testing.T) {
	i := DateInterval{day(2026, 8, 1), day(2026, 8, 8)}
	assert.Equal(t, 8, i.Days())
	assert.Equal(t, 7, i.Nights())

	single := DateInterval{day(2026, 8, 1), day(2026, 8, 1)}
	assert.Equal(t, 1, single.Days())
	assert.Equal(t, 0, single.Nights())
}

func TestAtDay(t *testing.T) {
	ams, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Amsterdam.
	late := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	got := AtDay(late, ams)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, ams), got)

	noon := time.Date(2026, 3, 14, 12, 0, 0, 0, ams)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, ams), AtDay(noon, ams))
}

func TestSameDay(t *testing.T) {
	ams, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	a := time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)
	b := time.Date(2026, 5, 2, 6, 0, 0, 0, ams)
	assert.True(t, SameDay(a, b, ams))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestConflictKey_OrderIndependent(t *testing.T) {
	assert.Equal(t, ConflictKey("b", "a", "c"), ConflictKey("c", "a", "b"))
	assert.Equal(t, "a-b-c", ConflictKey("b", "a", "c"))
}

func TestBookingOverlapConflict_Severity(t *testing.T) {
	two := &BookingOverlapConflict{Bookings: []Booking{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, SeverityHigh, two.Severity())

	potential := &BookingOverlapConflict{Bookings: []Booking{{ID: "a"}, {ID: "b"}}, Potential: true}
	assert.Equal(t, SeverityMedium, potential.Severity())

	// three and more parties are always HIGH, pending or not
	three := &BookingOverlapConflict{Bookings: []Booking{{ID: "a"}, {ID: "b"}, {ID: "c"}}, Potential: true}
	assert.Equal(t, SeverityHigh, three.Severity())
}

func TestCalendarEvent_Informational(t *testing.T) {
	assert.True(t, (&CalendarEvent{ColorID: ColorInformational}).Informational())
	assert.False(t, (&CalendarEvent{ColorID: ColorBooking}).Informational())
	assert.False(t, (&CalendarEvent{}).Informational())
}

func TestEventPatch_Empty(t *testing.T) {
	assert.True(t, EventPatch{}.Empty())

	s := "x"
	assert.False(t, EventPatch{Summary: &s}.Empty())
}
