package ports

import (
	"context"

	"github.com/fansel/domburg-sub000/internal/domain"
)

// ConflictNotifier delivers one conflict to the configured recipients. A nil
// return means at least one recipient got the message; only then may the
// notified marker stay committed.
type ConflictNotifier interface {
	NotifyConflict(ctx context.Context, c domain.Conflict) error
}
