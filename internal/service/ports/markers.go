package ports

import (
	"context"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
)

type MarkerRepo interface {
	IsIgnored(ctx context.Context, key string, typ domain.ConflictType) (bool, error)
	Ignore(ctx context.Context, key string, typ domain.ConflictType, reason string) error
	Unignore(ctx context.Context, key string, typ domain.ConflictType) error
	MarkNotified(ctx context.Context, key string, typ domain.ConflictType, staleBefore time.Time) error
	UnmarkNotified(ctx context.Context, key string, typ domain.ConflictType) error
	DeleteNotifiedForEvents(ctx context.Context, eventIDs []string) error
}
