package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	gcal "google.golang.org/api/calendar/v3"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func disabledAdapter(t *testing.T) *GoogleCalendar {
	t.Helper()
	g, err := NewGoogleCalendar(context.Background(), "", "", 250, time.UTC, newTestLogger(t))
	require.NoError(t, err)
	return g
}

func TestGoogleCalendar_DisabledAdapterDegrades(t *testing.T) {
	g := disabledAdapter(t)
	ctx := context.Background()

	events, err := g.ListEvents(ctx, time.Now(), time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = g.GetEvent(ctx, "ev1")
	assert.ErrorIs(t, err, domain.ErrCalendarUnavailable)

	id, err := g.CreateEvent(ctx, "s", "d", time.Now(), time.Now(), domain.ColorBooking)
	require.NoError(t, err)
	assert.Empty(t, id)

	s := "x"
	ok, err := g.UpdateEvent(ctx, "ev1", domain.EventPatch{Summary: &s})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.DeleteEvent(ctx, "ev1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGoogleCalendar_ReadDate_AllDayEndBecomesInclusive(t *testing.T) {
	g := disabledAdapter(t)

	// upstream all-day end "2026-06-08" means the stay ends on the 7th
	start, err := g.readDate(&gcal.EventDateTime{Date: "2026-06-01"}, false)
	require.NoError(t, err)
	end, err := g.readDate(&gcal.EventDateTime{Date: "2026-06-08"}, true)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC), end)
}

func TestGoogleCalendar_ReadDate_TimedEventFallsOnItsDay(t *testing.T) {
	ams, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	g, err := NewGoogleCalendar(context.Background(), "", "", 250, ams, newTestLogger(t))
	require.NoError(t, err)

	// 23:00 UTC is already the next day at the property
	got, err := g.readDate(&gcal.EventDateTime{DateTime: "2026-06-01T23:00:00Z"}, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, ams), got)
}

func TestGoogleCalendar_ReadDate_Missing(t *testing.T) {
	g := disabledAdapter(t)

	_, err := g.readDate(nil, false)
	require.Error(t, err)
}

func TestGoogleCalendar_ExclusiveEndRoundTrip(t *testing.T) {
	g := disabledAdapter(t)

	inclusive := time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)
	wire := g.toExclusiveEnd(inclusive)
	assert.Equal(t, "2026-06-08", wire)

	back, err := g.readDate(&gcal.EventDateTime{Date: wire}, true)
	require.NoError(t, err)
	assert.Equal(t, inclusive, back)
}

func TestGoogleCalendar_ToDomain_MapsFields(t *testing.T) {
	g := disabledAdapter(t)

	ev, err := g.toDomain(&gcal.Event{
		Id:          "ev1",
		Summary:     "Booking block",
		Description: "details",
		ColorId:     "3",
		Start:       &gcal.EventDateTime{Date: "2026-06-01"},
		End:         &gcal.EventDateTime{Date: "2026-06-08"},
	})

	require.NoError(t, err)
	assert.Equal(t, "ev1", ev.ID)
	assert.Equal(t, "Booking block", ev.Summary)
	assert.Equal(t, "3", ev.ColorID)
	assert.Equal(t, 7, ev.Interval().Days())
}
