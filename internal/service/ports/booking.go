package ports

import (
	"context"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	ListWithEventRef(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	ListOverlapping(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	SetEventID(ctx context.Context, bookingID, eventID string) (bool, error)
	ClearEventID(ctx context.Context, bookingID string) error
	PullCalendarDates(ctx context.Context, bookingID string, start, end time.Time, priceTotal float64, note string) (bool, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, note string) error
}
