package service

import (
	"context"
	"testing"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newViewFixture(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockCalendarAPI, *ViewService) {
	t.Helper()
	bookings := mocks.NewMockBookingRepo(t)
	cal := mocks.NewMockCalendarAPI(t)
	return bookings, cal, NewViewService(bookings, cal, time.UTC)
}

func TestViewService_ProjectMonth_ContainedPeriodHidden(t *testing.T) {
	bookings, cal, svc := newViewFixture(t)

	bookings.EXPECT().ListOverlapping(mock.Anything, utcDay(2026, 6, 1), utcDay(2026, 6, 30),
		[]domain.BookingStatus{domain.BookingStatusApproved}).Return(nil, nil)
	cal.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.CalendarEvent{
		stayEvent("long", "3", 1, 10),
		stayEvent("short", "4", 4, 6),
	}, nil)

	grid, err := svc.ProjectMonth(context.Background(), 2026, time.June)

	require.NoError(t, err)
	// the contained stay disappears from the grid but still counts
	require.Len(t, grid.Periods, 1)
	assert.Equal(t, "long", grid.Periods[0].ID)
	assert.Equal(t, 2, grid.OccupiedCount)

	assert.Equal(t, domain.DayArrival, grid.Days[1].Type)
	assert.Equal(t, "3", grid.Days[1].ArrivingColor)
	assert.Equal(t, domain.DayOccupied, grid.Days[4].Type)
	assert.Equal(t, "3", grid.Days[4].Color)
	assert.Equal(t, domain.DayDeparture, grid.Days[10].Type)
	assert.Equal(t, "3", grid.Days[10].DepartingColor)

	_, occupied := grid.Days[11]
	assert.False(t, occupied)
}

func TestViewService_ProjectMonth_TurnoverDay(t *testing.T) {
	bookings, cal, svc := newViewFixture(t)

	b := stayBooking("b1", domain.BookingStatusApproved, 1, 5)
	bookings.EXPECT().ListOverlapping(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{b}, nil)
	cal.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.CalendarEvent{
		stayEvent("e2", "6", 5, 12),
	}, nil)

	grid, err := svc.ProjectMonth(context.Background(), 2026, time.June)

	require.NoError(t, err)

	// one guest leaves, the next arrives: the day splits into two halves
	day5 := grid.Days[5]
	assert.Equal(t, domain.DayBoth, day5.Type)
	assert.Equal(t, domain.ColorBooking, day5.DepartingColor)
	assert.Equal(t, "6", day5.ArrivingColor)

	assert.Equal(t, domain.DayArrival, grid.Days[1].Type)
	assert.Equal(t, domain.ColorBooking, grid.Days[1].ArrivingColor)
	assert.Equal(t, domain.DayDeparture, grid.Days[12].Type)
}

func TestViewService_ProjectMonth_SkipsInformationalAndOwnedEvents(t *testing.T) {
	bookings, cal, svc := newViewFixture(t)

	b := stayBooking("b1", domain.BookingStatusApproved, 10, 15)
	b.GoogleEventID = "own"
	bookings.EXPECT().ListOverlapping(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{b}, nil)
	cal.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.CalendarEvent{
		// the booking's own event must not double the occupancy
		stayEvent("own", domain.ColorBooking, 10, 15),
		stayEvent("note", domain.ColorInformational, 1, 30),
	}, nil)

	grid, err := svc.ProjectMonth(context.Background(), 2026, time.June)

	require.NoError(t, err)
	require.Len(t, grid.Periods, 1)
	assert.Equal(t, domain.SourceBooking, grid.Periods[0].Source)
	assert.Equal(t, 1, grid.OccupiedCount)

	_, marked := grid.Days[2]
	assert.False(t, marked)
}

func TestViewService_ProjectMonth_EmptyMonth(t *testing.T) {
	bookings, cal, svc := newViewFixture(t)

	bookings.EXPECT().ListOverlapping(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	cal.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	grid, err := svc.ProjectMonth(context.Background(), 2026, time.February)

	require.NoError(t, err)
	assert.Empty(t, grid.Days)
	assert.Empty(t, grid.Periods)
	assert.Zero(t, grid.OccupiedCount)
}

func TestViewService_ProjectMonth_InvalidMonth(t *testing.T) {
	_, _, svc := newViewFixture(t)

	_, err := svc.ProjectMonth(context.Background(), 2026, time.Month(13))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
