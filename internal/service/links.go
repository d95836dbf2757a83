package service

import (
	"context"
	"fmt"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LinkService maintains the "same logical occupancy" relation between
// external calendar events. Bookings are never linkable; their events are
// owned by the reconciler.
type LinkService struct {
	links   ports.LinkRepo
	markers ports.MarkerRepo
	cal     ports.CalendarAPI
	logger  logger.Logger
}

func NewLinkService(
	links ports.LinkRepo,
	markers ports.MarkerRepo,
	cal ports.CalendarAPI,
	logger logger.Logger,
) *LinkService {
	return &LinkService{
		links:   links,
		markers: markers,
		cal:     cal,
		logger:  logger,
	}
}

// Link declares the given events one logical occupancy: one identity color is
// applied to all of them and an edge is persisted for every pair.
func (s *LinkService) Link(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) < 2 {
		return domain.ErrNotLinkable
	}

	events := make([]*domain.CalendarEvent, 0, len(eventIDs))
	for _, id := range eventIDs {
		ev, err := s.cal.GetEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch event %s: %w", id, err)
		}
		events = append(events, ev)
	}

	color := groupColor(events)
	for _, ev := range events {
		if ev.ColorID == color {
			continue
		}
		c := color
		if _, err := s.cal.UpdateEvent(ctx, ev.ID, domain.EventPatch{ColorID: &c}); err != nil {
			return fmt.Errorf("apply group color to %s: %w", ev.ID, err)
		}
	}

	for i := 0; i < len(eventIDs); i++ {
		for j := i + 1; j < len(eventIDs); j++ {
			if err := s.links.AddEdge(ctx, eventIDs[i], eventIDs[j]); err != nil {
				return fmt.Errorf("persist edge: %w", err)
			}
		}
	}

	s.logger.Info("events linked",
		logger.Int("count", len(eventIDs)),
		logger.String("color", color),
	)

	return nil
}

// Unlink dissolves the relation. With a single id only edges touching that
// event are removed (partial unlink, the rest of the group stays connected);
// with several ids the edges among exactly that set go away. Freed events get
// distinct colors again, and stale notified markers mentioning them are
// dropped so still-real overlaps resurface.
func (s *LinkService) Unlink(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return domain.ErrNotLinkable
	}

	if len(eventIDs) == 1 {
		if err := s.links.RemoveEdgesTouching(ctx, eventIDs[0]); err != nil {
			return err
		}
	} else {
		if err := s.links.RemoveEdgesAmong(ctx, eventIDs); err != nil {
			return err
		}
	}

	// Каждому освобождённому событию — свой цвет.
	for i, id := range eventIDs {
		color := domain.GroupColorPalette[i%len(domain.GroupColorPalette)]
		if _, err := s.cal.UpdateEvent(ctx, id, domain.EventPatch{ColorID: &color}); err != nil {
			s.logger.Error("failed to recolor unlinked event",
				logger.String("event_id", id),
				logger.String("error", err.Error()),
			)
		}
	}

	if err := s.markers.DeleteNotifiedForEvents(ctx, eventIDs); err != nil {
		return fmt.Errorf("reset notified markers: %w", err)
	}

	s.logger.Info("events unlinked", logger.Int("count", len(eventIDs)))

	return nil
}

// AreGrouped reports whether the whole candidate set belongs to one linked
// group, using the transitive closure over all persisted edges.
func (s *LinkService) AreGrouped(ctx context.Context, eventIDs []string) (bool, error) {
	if len(eventIDs) <= 1 {
		return true, nil
	}

	edges, err := s.links.ListEdges(ctx)
	if err != nil {
		return false, fmt.Errorf("list edges: %w", err)
	}

	return newLinkGraph(edges).Connected(eventIDs), nil
}

// groupColor reuses the first explicit, non-informational color found among
// the events, falling back to the fixed group color.
func groupColor(events []*domain.CalendarEvent) string {
	for _, ev := range events {
		if ev.ColorID != "" && ev.ColorID != domain.ColorInformational {
			return ev.ColorID
		}
	}
	return domain.ColorLinkedFallback
}
