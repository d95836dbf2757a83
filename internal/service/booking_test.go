package service

import (
	"context"
	"testing"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/pricing"
	"github.com/fansel/domburg-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	start := utcDay(2026, 7, 10)
	end := utcDay(2026, 7, 17)

	pricer.EXPECT().Price(start, end, false).
		Return(pricing.Quote{Total: 725, Nights: 7, NightlyRate: 95, CleaningFee: 60})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		StartDate:  start,
		EndDate:    end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 725.0, booking.PriceTotal)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, start, booking.StartDate)
	assert.Equal(t, end, booking.EndDate)
}

func TestBookingService_Create_NormalizesToUTCDay(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	// times of day must not survive into the ledger
	start := time.Date(2026, 7, 10, 15, 4, 5, 0, time.UTC)
	end := time.Date(2026, 7, 17, 9, 0, 0, 0, time.UTC)

	pricer.EXPECT().Price(utcDay(2026, 7, 10), utcDay(2026, 7, 17), false).Return(pricing.Quote{Total: 725})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		StartDate:  start,
		EndDate:    end,
	})

	require.NoError(t, err)
	assert.Equal(t, utcDay(2026, 7, 10), booking.StartDate)
	assert.Equal(t, utcDay(2026, 7, 17), booking.EndDate)
}

func TestBookingService_Create_SingleDayStay(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	day := utcDay(2026, 7, 10)
	pricer.EXPECT().Price(day, day, false).Return(pricing.Quote{Total: 60, Nights: 0})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		StartDate:  day,
		EndDate:    day,
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StartDate, booking.EndDate)
}

func TestBookingService_Create_EndBeforeStart(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		StartDate:  utcDay(2026, 7, 17),
		EndDate:    utcDay(2026, 7, 10),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestBookingService_Create_MissingGuest(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestEmail: "alice@example.com",
		StartDate:  utcDay(2026, 7, 10),
		EndDate:    utcDay(2026, 7, 17),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SetStatus_Approve(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	stored := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(stored, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApproved, mock.Anything).
		Run(func(ctx context.Context, bookingID string, status domain.BookingStatus, note string) {
			assert.Contains(t, note, "admin")
			assert.Contains(t, note, "pending -> approved")
		}).
		Return(nil)

	booking, err := svc.SetStatus(context.Background(), "b1", domain.BookingStatusApproved, "admin")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)
	assert.Contains(t, booking.AdminNotes, "admin")
}

func TestBookingService_SetStatus_InvalidTransition(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{"rejected is terminal", domain.BookingStatusRejected, domain.BookingStatusApproved},
		{"cancelled is terminal", domain.BookingStatusCancelled, domain.BookingStatusApproved},
		{"approved cannot be rejected", domain.BookingStatusApproved, domain.BookingStatusRejected},
		{"no self transition", domain.BookingStatusPending, domain.BookingStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: tt.from}, nil).Once()

			_, err := svc.SetStatus(context.Background(), "b1", tt.to, "admin")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_SetStatus_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.SetStatus(context.Background(), "missing", domain.BookingStatusApproved, "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_List_DefaultsToAllStatuses(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	pricer := mocks.NewMockPricer(t)
	log := newTestLogger(t)

	svc := NewBookingService(repo, pricer, time.UTC, log)

	repo.EXPECT().List(mock.Anything, allStatuses).Return([]*domain.Booking{{ID: "b1"}}, nil)

	result, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
