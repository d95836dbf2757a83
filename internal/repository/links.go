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

// LinkRepository persists the symmetric linked-event relation. One row per
// unordered pair, endpoints stored in lexicographic order.
type LinkRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLinkRepo(db *dbpg.DB) *LinkRepository {
	return &LinkRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LinkRepository) AddEdge(ctx context.Context, eventID1, eventID2 string) error {
	if eventID2 < eventID1 {
		eventID1, eventID2 = eventID2, eventID1
	}

	query := `INSERT INTO linked_events (event_id_1, event_id_2, created_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (event_id_1, event_id_2) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID1, eventID2); err != nil {
		return fmt.Errorf("insert linked pair: %w", err)
	}

	return nil
}

// RemoveEdgesAmong удаляет рёбра, оба конца которых входят в набор.
func (r *LinkRepository) RemoveEdgesAmong(ctx context.Context, eventIDs []string) error {
	query := `DELETE FROM linked_events
			  WHERE event_id_1 = ANY($1) AND event_id_2 = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(eventIDs)); err != nil {
		return fmt.Errorf("remove edges among: %w", err)
	}

	return nil
}

// RemoveEdgesTouching detaches one event from its group, leaving the rest of
// the group connected.
func (r *LinkRepository) RemoveEdgesTouching(ctx context.Context, eventID string) error {
	query := `DELETE FROM linked_events
			  WHERE event_id_1 = $1 OR event_id_2 = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID); err != nil {
		return fmt.Errorf("remove edges touching: %w", err)
	}

	return nil
}

func (r *LinkRepository) ListEdges(ctx context.Context) ([]domain.LinkedEventPair, error) {
	query := `SELECT event_id_1, event_id_2 FROM linked_events`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list linked pairs: %w", err)
	}
	defer rows.Close()

	var res []domain.LinkedEventPair
	for rows.Next() {
		var p domain.LinkedEventPair
		if err = rows.Scan(&p.EventID1, &p.EventID2); err != nil {
			return nil, fmt.Errorf("scan linked pair: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
