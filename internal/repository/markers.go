package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// MarkerRepository stores the ignored / notified conflict markers, both keyed
// by (conflict_key, conflict_type).
type MarkerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMarkerRepo(db *dbpg.DB) *MarkerRepository {
	return &MarkerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MarkerRepository) IsIgnored(ctx context.Context, key string, typ domain.ConflictType) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM ignored_conflicts
				WHERE conflict_key = $1 AND conflict_type = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key, typ)
	if err != nil {
		return false, fmt.Errorf("check ignored: %w", err)
	}

	var ignored bool
	if err = row.Scan(&ignored); err != nil {
		return false, fmt.Errorf("scan ignored: %w", err)
	}

	return ignored, nil
}

func (r *MarkerRepository) Ignore(ctx context.Context, key string, typ domain.ConflictType, reason string) error {
	query := `INSERT INTO ignored_conflicts (conflict_key, conflict_type, reason, created_at)
			  VALUES ($1, $2, $3, now())
			  ON CONFLICT (conflict_key, conflict_type) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, typ, reason); err != nil {
		return fmt.Errorf("insert ignored marker: %w", err)
	}

	return nil
}

func (r *MarkerRepository) Unignore(ctx context.Context, key string, typ domain.ConflictType) error {
	query := `DELETE FROM ignored_conflicts
			  WHERE conflict_key = $1 AND conflict_type = $2`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, typ); err != nil {
		return fmt.Errorf("delete ignored marker: %w", err)
	}

	return nil
}

// MarkNotified claims the conflict for notification. The guarded upsert only
// refreshes a marker older than staleBefore, so of two concurrent notifiers
// exactly one sees rows > 0; the loser gets ErrAlreadyNotified and skips.
func (r *MarkerRepository) MarkNotified(ctx context.Context, key string, typ domain.ConflictType, staleBefore time.Time) error {
	query := `INSERT INTO notified_conflicts (conflict_key, conflict_type, notified_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (conflict_key, conflict_type)
			  DO UPDATE SET notified_at = now()
			  WHERE notified_conflicts.notified_at <= $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, typ, staleBefore)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark notified rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyNotified
	}

	return nil
}

// UnmarkNotified rolls the claim back after a failed send so the next run
// retries.
func (r *MarkerRepository) UnmarkNotified(ctx context.Context, key string, typ domain.ConflictType) error {
	query := `DELETE FROM notified_conflicts
			  WHERE conflict_key = $1 AND conflict_type = $2`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, typ); err != nil {
		return fmt.Errorf("delete notified marker: %w", err)
	}

	return nil
}

// DeleteNotifiedForEvents drops notified markers whose key mentions any of
// the given event ids. Called on unlink so a still-overlapping pair gets
// re-evaluated instead of staying suppressed by a stale marker.
func (r *MarkerRepository) DeleteNotifiedForEvents(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	query := `DELETE FROM notified_conflicts
			  WHERE conflict_type = $1
			    AND string_to_array(conflict_key, '-') && $2`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.ConflictCalendarEvents, pq.Array(eventIDs))
	if err != nil {
		return fmt.Errorf("delete notified markers for events: %w", err)
	}

	return nil
}
