package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports"
)

// ViewService projects occupancy intervals onto a per-day month grid for the
// availability display. It consumes only the intervals, not the
// reconciliation machinery.
type ViewService struct {
	bookings ports.BookingRepo
	cal      ports.CalendarAPI
	loc      *time.Location
}

func NewViewService(bookings ports.BookingRepo, cal ports.CalendarAPI, loc *time.Location) *ViewService {
	return &ViewService{bookings: bookings, cal: cal, loc: loc}
}

// ProjectMonth classifies every day of the month as arrival, departure, both
// or occupied. Intervals wholly contained in a longer one are dropped from
// coloring and day typing but still count toward the occupied statistic.
func (s *ViewService) ProjectMonth(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", domain.ErrValidation)
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	periods, err := s.collectPeriods(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	// Длинные интервалы первыми; при равной длине — более поздний старт.
	sort.Slice(periods, func(i, j int) bool {
		di, dj := periods[i].Interval().Days(), periods[j].Interval().Days()
		if di != dj {
			return di > dj
		}
		return periods[i].StartDate.After(periods[j].StartDate)
	})

	visible := make([]domain.OccupancyPeriod, 0, len(periods))
	for _, p := range periods {
		contained := false
		for _, a := range visible {
			if a.Interval().Contains(p.Interval()) {
				contained = true
				break
			}
		}
		if !contained {
			visible = append(visible, p)
		}
	}

	grid := &domain.MonthGrid{
		Year:          year,
		Month:         month,
		Days:          make(map[int]domain.DayInfo),
		Periods:       visible,
		OccupiedCount: len(periods),
	}

	daysInMonth := monthEnd.Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
		if info, ok := s.classifyDay(date, visible); ok {
			grid.Days[day] = info
		}
	}

	return grid, nil
}

func (s *ViewService) collectPeriods(ctx context.Context, from, to time.Time) ([]domain.OccupancyPeriod, error) {
	// The ledger stores dates as UTC midnights, so the range query uses
	// UTC day bounds.
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	bookings, err := s.bookings.ListOverlapping(ctx, fromUTC, toUTC, []domain.BookingStatus{domain.BookingStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	owned := make(map[string]bool, len(bookings))
	periods := make([]domain.OccupancyPeriod, 0, len(bookings))
	for _, b := range bookings {
		if b.GoogleEventID != "" {
			owned[b.GoogleEventID] = true
		}
		periods = append(periods, domain.OccupancyPeriod{
			ID:        b.ID,
			Source:    domain.SourceBooking,
			StartDate: domain.AtDay(b.StartDate, s.loc),
			EndDate:   domain.AtDay(b.EndDate, s.loc),
			ColorID:   domain.ColorBooking,
			Summary:   b.GuestName,
		})
	}

	events, err := s.cal.ListEvents(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, ev := range events {
		// Информационные события и события самих броней не занимают дни.
		if ev.Informational() || owned[ev.ID] {
			continue
		}
		periods = append(periods, domain.OccupancyPeriod{
			ID:        ev.ID,
			Source:    domain.SourceCalendar,
			StartDate: domain.AtDay(ev.StartDate, s.loc),
			EndDate:   domain.AtDay(ev.EndDate, s.loc),
			ColorID:   ev.ColorID,
			Summary:   ev.Summary,
		})
	}

	return periods, nil
}

// classifyDay keeps the sets of intervals ending here and starting here
// apart, so a "both" day renders its two halves deterministically: the
// departing interval colors the first half, the arriving one the second.
func (s *ViewService) classifyDay(date time.Time, periods []domain.OccupancyPeriod) (domain.DayInfo, bool) {
	var arriving, departing, covering []domain.OccupancyPeriod
	for _, p := range periods {
		switch {
		case p.StartDate.Equal(date):
			arriving = append(arriving, p)
		case p.EndDate.Equal(date):
			departing = append(departing, p)
		case p.StartDate.Before(date) && p.EndDate.After(date):
			covering = append(covering, p)
		}
	}

	switch {
	case len(arriving) > 0 && len(departing) > 0:
		return domain.DayInfo{
			Type:           domain.DayBoth,
			ArrivingColor:  arriving[0].ColorID,
			DepartingColor: departing[0].ColorID,
		}, true
	case len(arriving) > 0:
		return domain.DayInfo{Type: domain.DayArrival, ArrivingColor: arriving[0].ColorID}, true
	case len(departing) > 0:
		return domain.DayInfo{Type: domain.DayDeparture, DepartingColor: departing[0].ColorID}, true
	case len(covering) > 0:
		return domain.DayInfo{Type: domain.DayOccupied, Color: covering[0].ColorID}, true
	}

	return domain.DayInfo{}, false
}
