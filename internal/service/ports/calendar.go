package ports

import (
	"context"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
)

// CalendarAPI is the external calendar adapter contract. All dates crossing
// this boundary use inclusive end dates. A misconfigured adapter degrades:
// lists are empty, writes return empty ids / false, and GetEvent answers
// ErrCalendarUnavailable — never ErrEventNotFound, which is reserved for an
// event known to be gone.
type CalendarAPI interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	GetEvent(ctx context.Context, eventID string) (*domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, summary, description string, start, end time.Time, colorID string) (string, error)
	UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch) (bool, error)
	DeleteEvent(ctx context.Context, eventID string) (bool, error)
}
