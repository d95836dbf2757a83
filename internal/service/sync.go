package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SyncService drives convergence between the booking ledger and the external
// calendar. Reconcile is built to be re-run at will: every destructive step
// re-reads the authoritative booking status first, because the calendar round
// trip is not atomic with the local transaction.
type SyncService struct {
	bookings ports.BookingRepo
	cal      ports.CalendarAPI
	pricer   ports.Pricer
	loc      *time.Location
	property string
	logger   logger.Logger
}

func NewSyncService(
	bookings ports.BookingRepo,
	cal ports.CalendarAPI,
	pricer ports.Pricer,
	loc *time.Location,
	property string,
	logger logger.Logger,
) *SyncService {
	return &SyncService{
		bookings: bookings,
		cal:      cal,
		pricer:   pricer,
		loc:      loc,
		property: property,
		logger:   logger,
	}
}

// Reconcile pushes approved bookings to the calendar, absorbs manual edits
// made there, and removes events of cancelled or rejected bookings. One
// broken booking never aborts the batch; its error lands in the report.
func (s *SyncService) Reconcile(ctx context.Context, actor string) (*domain.SyncReport, error) {
	report := &domain.SyncReport{}

	approved, err := s.bookings.List(ctx, []domain.BookingStatus{domain.BookingStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("list approved bookings: %w", err)
	}

	for _, b := range approved {
		if err := s.reconcileApproved(ctx, b, actor, report); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("booking %s: %v", b.ID, err))
		}
	}

	closed, err := s.bookings.ListWithEventRef(ctx, []domain.BookingStatus{
		domain.BookingStatusCancelled, domain.BookingStatusRejected,
	})
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("list closed bookings: %v", err))
		return report, nil
	}

	for _, b := range closed {
		if err := s.dropEvent(ctx, b, report); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("booking %s: %v", b.ID, err))
		}
	}

	s.logger.Info("reconcile finished",
		logger.Int("created", report.Created),
		logger.Int("updated", report.Updated),
		logger.Int("deleted", report.Deleted),
		logger.Int("pulled_from_calendar", report.PulledFromCalendar),
		logger.Int("errors", len(report.Errors)),
	)

	return report, nil
}

func (s *SyncService) reconcileApproved(ctx context.Context, b *domain.Booking, actor string, report *domain.SyncReport) error {
	if b.GoogleEventID == "" {
		return s.createEventFor(ctx, b, report)
	}

	ev, err := s.cal.GetEvent(ctx, b.GoogleEventID)
	if errors.Is(err, domain.ErrCalendarUnavailable) {
		// Адаптер выключен — ссылка остаётся как есть до лучших времён.
		return nil
	}
	if errors.Is(err, domain.ErrEventNotFound) {
		// Событие удалили или отменили прямо в календаре — ссылка протухла.
		if err := s.bookings.ClearEventID(ctx, b.ID); err != nil {
			return err
		}
		b.GoogleEventID = ""
		return s.createEventFor(ctx, b, report)
	}
	if err != nil {
		return fmt.Errorf("fetch event: %w", err)
	}

	evStart := domain.AtDay(ev.StartDate, s.loc)
	evEnd := domain.AtDay(ev.EndDate, s.loc)
	if !evStart.Equal(domain.AtDay(b.StartDate, s.loc)) || !evEnd.Equal(domain.AtDay(b.EndDate, s.loc)) {
		return s.absorbDrift(ctx, b, ev, evStart, evEnd, actor, report)
	}

	patch := s.displayPatch(b, ev)
	if patch.Empty() {
		return nil
	}
	if _, err := s.cal.UpdateEvent(ctx, ev.ID, patch); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	report.Updated++

	return nil
}

func (s *SyncService) createEventFor(ctx context.Context, b *domain.Booking, report *domain.SyncReport) error {
	eventID, err := s.cal.CreateEvent(
		ctx,
		s.eventSummary(b), s.eventDescription(b),
		b.StartDate, b.EndDate,
		domain.ColorBooking,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	if eventID == "" {
		// Календарь не настроен, работаем без него.
		return nil
	}

	ok, err := s.bookings.SetEventID(ctx, b.ID, eventID)
	if err != nil {
		return fmt.Errorf("store event ref: %w", err)
	}
	if !ok {
		// The booking was cancelled while we were talking to the
		// calendar: compensate instead of keeping an orphaned event.
		if _, err := s.cal.DeleteEvent(ctx, eventID); err != nil {
			return fmt.Errorf("compensating delete: %w", err)
		}
		s.logger.Info("compensated event for concurrently closed booking",
			logger.String("booking_id", b.ID),
			logger.String("event_id", eventID),
		)
		return nil
	}

	report.Created++
	return nil
}

// absorbDrift pulls dates edited directly on the calendar into the booking,
// reprices the stay, leaves an audit note and pushes the canonical display
// fields back so both sides converge.
func (s *SyncService) absorbDrift(
	ctx context.Context,
	b *domain.Booking,
	ev *domain.CalendarEvent,
	evStart, evEnd time.Time,
	actor string,
	report *domain.SyncReport,
) error {
	quote := s.pricer.Price(evStart, evEnd, b.AlternateRate)
	note := fmt.Sprintf(
		"\n[%s] %s: dates pulled from calendar %s..%s (was %s..%s), price %.2f",
		time.Now().UTC().Format(time.RFC3339), actor,
		evStart.Format("2006-01-02"), evEnd.Format("2006-01-02"),
		b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"),
		quote.Total,
	)

	ok, err := s.bookings.PullCalendarDates(ctx, b.ID, evStart, evEnd, quote.Total, note)
	if err != nil {
		return fmt.Errorf("pull calendar dates: %w", err)
	}
	if !ok {
		// Бронь уже не approved — дрифт больше не наша забота.
		return nil
	}
	report.PulledFromCalendar++

	s.logger.Info("calendar drift absorbed",
		logger.String("booking_id", b.ID),
		logger.String("event_id", ev.ID),
		logger.String("start", evStart.Format("2006-01-02")),
		logger.String("end", evEnd.Format("2006-01-02")),
	)

	b.StartDate, b.EndDate = evStart, evEnd
	b.PriceTotal = quote.Total
	patch := s.displayPatch(b, ev)
	if patch.Empty() {
		return nil
	}
	if _, err := s.cal.UpdateEvent(ctx, ev.ID, patch); err != nil {
		return fmt.Errorf("push display fields: %w", err)
	}

	return nil
}

func (s *SyncService) dropEvent(ctx context.Context, b *domain.Booking, report *domain.SyncReport) error {
	ok, err := s.cal.DeleteEvent(ctx, b.GoogleEventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !ok {
		// Disabled adapter: the event still exists upstream, keep the ref
		// so a later run can actually delete it.
		return nil
	}
	if err := s.bookings.ClearEventID(ctx, b.ID); err != nil {
		return fmt.Errorf("clear event ref: %w", err)
	}

	report.Deleted++
	return nil
}

// displayPatch diffs the canonical summary/description/color for a booking
// against what the event currently shows.
func (s *SyncService) displayPatch(b *domain.Booking, ev *domain.CalendarEvent) domain.EventPatch {
	var patch domain.EventPatch

	if want := s.eventSummary(b); ev.Summary != want {
		patch.Summary = &want
	}
	if want := s.eventDescription(b); ev.Description != want {
		patch.Description = &want
	}
	if ev.ColorID != domain.ColorBooking {
		color := domain.ColorBooking
		patch.ColorID = &color
	}

	return patch
}

func (s *SyncService) eventSummary(b *domain.Booking) string {
	return fmt.Sprintf("%s: %s", s.property, b.GuestName)
}

func (s *SyncService) eventDescription(b *domain.Booking) string {
	nights := b.Interval().Nights()
	return fmt.Sprintf("Booking %s\n%s, %d nights\nTotal %.2f", b.ID, b.GuestEmail, nights, b.PriceTotal)
}
