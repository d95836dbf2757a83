package ports

import (
	"context"

	"github.com/fansel/domburg-sub000/internal/domain"
)

type LinkRepo interface {
	AddEdge(ctx context.Context, eventID1, eventID2 string) error
	RemoveEdgesAmong(ctx context.Context, eventIDs []string) error
	RemoveEdgesTouching(ctx context.Context, eventID string) error
	ListEdges(ctx context.Context) ([]domain.LinkedEventPair, error)
}
