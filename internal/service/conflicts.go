package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ConflictService finds double bookings across the ledger and the external
// calendar and decides which of them deserve a notification.
type ConflictService struct {
	bookings       ports.BookingRepo
	cal            ports.CalendarAPI
	links          ports.LinkRepo
	markers        ports.MarkerRepo
	notifier       ports.ConflictNotifier
	loc            *time.Location
	reNotifyWindow time.Duration
	// окно сканирования внешних событий вокруг "сейчас"
	scanPast   time.Duration
	scanFuture time.Duration
	logger     logger.Logger
}

func NewConflictService(
	bookings ports.BookingRepo,
	cal ports.CalendarAPI,
	links ports.LinkRepo,
	markers ports.MarkerRepo,
	notifier ports.ConflictNotifier,
	loc *time.Location,
	reNotifyWindow time.Duration,
	scanPast, scanFuture time.Duration,
	logger logger.Logger,
) *ConflictService {
	return &ConflictService{
		bookings:       bookings,
		cal:            cal,
		links:          links,
		markers:        markers,
		notifier:       notifier,
		loc:            loc,
		reNotifyWindow: reNotifyWindow,
		scanPast:       scanPast,
		scanFuture:     scanFuture,
		logger:         logger,
	}
}

// FindAllConflicts runs the three detection passes, dedups by conflict key
// and filters the ignore ledger. A dead calendar degrades the scan to
// booking-only conflicts instead of failing it.
func (s *ConflictService) FindAllConflicts(ctx context.Context) ([]domain.Conflict, error) {
	active, err := s.bookings.List(ctx, domain.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	now := time.Now()
	events, err := s.cal.ListEvents(ctx, now.Add(-s.scanPast), now.Add(s.scanFuture))
	if err != nil {
		s.logger.Error("calendar listing failed, scanning bookings only",
			logger.String("error", err.Error()),
		)
		events = nil
	}

	edges, err := s.links.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list linked edges: %w", err)
	}
	graph := newLinkGraph(edges)

	var conflicts []domain.Conflict
	conflicts = append(conflicts, s.bookingOverlaps(active)...)
	conflicts = append(conflicts, s.bookingEventOverlaps(active, events)...)
	conflicts = append(conflicts, s.eventOverlaps(active, events, graph)...)

	return s.filter(ctx, dedup(conflicts))
}

// bookingOverlaps clusters active bookings by pairwise date overlap; every
// cluster is one conflict involving all its parties.
func (s *ConflictService) bookingOverlaps(active []*domain.Booking) []domain.Conflict {
	uf := newUnionFind()
	byID := make(map[string]*domain.Booking, len(active))
	for _, b := range active {
		byID[b.ID] = b
	}

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if s.normalized(active[i].Interval()).Overlaps(s.normalized(active[j].Interval())) {
				uf.union(active[i].ID, active[j].ID)
			}
		}
	}

	var res []domain.Conflict
	for _, ids := range uf.groups() {
		members := make([]domain.Booking, 0, len(ids))
		pending := false
		for _, id := range ids {
			b := byID[id]
			members = append(members, *b)
			if b.Status == domain.BookingStatusPending {
				pending = true
			}
		}
		sort.Slice(members, func(a, b int) bool {
			return members[a].StartDate.Before(members[b].StartDate)
		})

		res = append(res, &domain.BookingOverlapConflict{
			Bookings:  members,
			Potential: len(members) == 2 && pending,
		})
	}

	return res
}

func (s *ConflictService) bookingEventOverlaps(active []*domain.Booking, events []*domain.CalendarEvent) []domain.Conflict {
	var res []domain.Conflict
	for _, b := range active {
		for _, ev := range events {
			if ev.Informational() || ev.ID == b.GoogleEventID {
				continue
			}
			if s.normalized(b.Interval()).Overlaps(s.normalized(ev.Interval())) {
				res = append(res, &domain.BookingEventConflict{Booking: *b, Event: *ev})
			}
		}
	}

	return res
}

// eventOverlaps clusters overlapping non-booking, non-informational events.
// A cluster that is one linked group is a single logical occupancy, not a
// conflict.
func (s *ConflictService) eventOverlaps(active []*domain.Booking, events []*domain.CalendarEvent, graph *linkGraph) []domain.Conflict {
	owned := make(map[string]bool, len(active))
	for _, b := range active {
		if b.GoogleEventID != "" {
			owned[b.GoogleEventID] = true
		}
	}

	var candidates []*domain.CalendarEvent
	byID := make(map[string]*domain.CalendarEvent)
	for _, ev := range events {
		if ev.Informational() || owned[ev.ID] {
			continue
		}
		candidates = append(candidates, ev)
		byID[ev.ID] = ev
	}

	uf := newUnionFind()
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if s.normalized(candidates[i].Interval()).Overlaps(s.normalized(candidates[j].Interval())) {
				uf.union(candidates[i].ID, candidates[j].ID)
			}
		}
	}

	var res []domain.Conflict
	for _, ids := range uf.groups() {
		if graph.Connected(ids) {
			continue
		}
		members := make([]domain.CalendarEvent, 0, len(ids))
		for _, id := range ids {
			members = append(members, *byID[id])
		}
		sort.Slice(members, func(a, b int) bool {
			return members[a].StartDate.Before(members[b].StartDate)
		})

		res = append(res, &domain.EventOverlapConflict{Events: members})
	}

	return res
}

func (s *ConflictService) filter(ctx context.Context, conflicts []domain.Conflict) ([]domain.Conflict, error) {
	res := make([]domain.Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		ignored, err := s.markers.IsIgnored(ctx, c.Key(), c.Type())
		if err != nil {
			return nil, fmt.Errorf("check ignored: %w", err)
		}
		if !ignored {
			res = append(res, c)
		}
	}

	return res, nil
}

func dedup(conflicts []domain.Conflict) []domain.Conflict {
	seen := make(map[string]bool, len(conflicts))
	res := make([]domain.Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		k := string(c.Type()) + "|" + c.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, c)
	}

	return res
}

func (s *ConflictService) normalized(i domain.DateInterval) domain.DateInterval {
	return domain.DateInterval{
		Start: domain.AtDay(i.Start, s.loc),
		End:   domain.AtDay(i.End, s.loc),
	}
}

// DispatchNotifications sends every HIGH, non-ignored conflict that has not
// been notified within the re-notify window. The notified marker is claimed
// first (the guarded upsert arbitrates concurrent notifiers) and rolled back
// when no recipient could be reached.
func (s *ConflictService) DispatchNotifications(ctx context.Context) (int, error) {
	conflicts, err := s.FindAllConflicts(ctx)
	if err != nil {
		return 0, err
	}

	staleBefore := time.Now().Add(-s.reNotifyWindow)
	sent := 0
	for _, c := range conflicts {
		if c.Severity() != domain.SeverityHigh {
			continue
		}

		err := s.markers.MarkNotified(ctx, c.Key(), c.Type(), staleBefore)
		if errors.Is(err, domain.ErrAlreadyNotified) {
			continue
		}
		if err != nil {
			s.logger.Error("failed to claim notified marker",
				logger.String("key", c.Key()),
				logger.String("error", err.Error()),
			)
			continue
		}

		if err := s.notifier.NotifyConflict(ctx, c); err != nil {
			s.logger.Error("conflict notification failed, rolling marker back",
				logger.String("key", c.Key()),
				logger.String("error", err.Error()),
			)
			if err := s.markers.UnmarkNotified(ctx, c.Key(), c.Type()); err != nil {
				s.logger.Error("failed to roll back notified marker",
					logger.String("key", c.Key()),
					logger.String("error", err.Error()),
				)
			}
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("conflict notifications sent", logger.Int("count", sent))
	}

	return sent, nil
}

// Ignore suppresses a conflict from all future detector output.
func (s *ConflictService) Ignore(ctx context.Context, key string, typ domain.ConflictType, reason string) error {
	return s.markers.Ignore(ctx, key, typ, reason)
}

func (s *ConflictService) Unignore(ctx context.Context, key string, typ domain.ConflictType) error {
	return s.markers.Unignore(ctx, key, typ)
}
