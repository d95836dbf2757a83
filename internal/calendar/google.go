package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const allDayLayout = "2006-01-02"

// GoogleCalendar talks to one Google calendar and normalizes its all-day
// event convention: upstream end dates are exclusive, everything behind this
// adapter works with inclusive end dates.
//
// Without credentials or a calendar id the adapter runs disabled: lists are
// empty, writes are no-ops and single-event reads answer
// ErrCalendarUnavailable so nobody mistakes the silence for a deletion.
type GoogleCalendar struct {
	svc        *gcal.Service
	calendarID string
	maxResults int64
	loc        *time.Location
	logger     logger.Logger
}

func NewGoogleCalendar(
	ctx context.Context,
	credentialsFile, calendarID string,
	maxResults int64,
	loc *time.Location,
	log logger.Logger,
) (*GoogleCalendar, error) {
	if credentialsFile == "" || calendarID == "" {
		log.Warn("google calendar is not configured, adapter disabled")
		return &GoogleCalendar{loc: loc, logger: log}, nil
	}

	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &GoogleCalendar{
		svc:        svc,
		calendarID: calendarID,
		maxResults: maxResults,
		loc:        loc,
		logger:     log,
	}, nil
}

func (g *GoogleCalendar) enabled() bool {
	return g.svc != nil
}

func (g *GoogleCalendar) ListEvents(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error) {
	if !g.enabled() {
		return nil, nil
	}

	var res []*domain.CalendarEvent
	pageToken := ""
	for {
		call := g.svc.Events.List(g.calendarID).
			Context(ctx).
			SingleEvents(true).
			MaxResults(g.maxResults).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}

		for _, item := range list.Items {
			if item.Status == "cancelled" {
				continue
			}
			ev, err := g.toDomain(item)
			if err != nil {
				g.logger.Error("skipping unparseable calendar event",
					logger.String("event_id", item.Id),
					logger.String("error", err.Error()),
				)
				continue
			}
			res = append(res, ev)
		}

		if list.NextPageToken == "" {
			return res, nil
		}
		pageToken = list.NextPageToken
	}
}

func (g *GoogleCalendar) GetEvent(ctx context.Context, eventID string) (*domain.CalendarEvent, error) {
	if !g.enabled() {
		// Not the same as "not found": the event may well exist upstream.
		return nil, domain.ErrCalendarUnavailable
	}

	item, err := g.svc.Events.Get(g.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Отменённое наверху событие для нас не существует.
	if item.Status == "cancelled" {
		return nil, domain.ErrEventNotFound
	}

	return g.toDomain(item)
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, summary, description string, start, end time.Time, colorID string) (string, error) {
	if !g.enabled() {
		return "", nil
	}

	ev := &gcal.Event{
		Summary:     summary,
		Description: description,
		ColorId:     colorID,
		Start:       &gcal.EventDateTime{Date: g.toExclusiveStart(start)},
		End:         &gcal.EventDateTime{Date: g.toExclusiveEnd(end)},
	}

	created, err := g.svc.Events.Insert(g.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}

	return created.Id, nil
}

func (g *GoogleCalendar) UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch) (bool, error) {
	if !g.enabled() || patch.Empty() {
		return false, nil
	}

	ev := &gcal.Event{}
	if patch.Summary != nil {
		ev.Summary = *patch.Summary
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.ColorID != nil {
		ev.ColorId = *patch.ColorID
	}
	if patch.StartDate != nil {
		ev.Start = &gcal.EventDateTime{Date: g.toExclusiveStart(*patch.StartDate)}
	}
	if patch.EndDate != nil {
		ev.End = &gcal.EventDateTime{Date: g.toExclusiveEnd(*patch.EndDate)}
	}

	if _, err := g.svc.Events.Patch(g.calendarID, eventID, ev).Context(ctx).Do(); err != nil {
		if isGone(err) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("patch event: %w", err)
	}

	return true, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) (bool, error) {
	if !g.enabled() {
		return false, nil
	}

	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		// Уже удалено руками — считаем успехом.
		if isGone(err) {
			return true, nil
		}
		return false, fmt.Errorf("delete event: %w", err)
	}

	return true, nil
}

func (g *GoogleCalendar) toDomain(item *gcal.Event) (*domain.CalendarEvent, error) {
	start, err := g.readDate(item.Start, false)
	if err != nil {
		return nil, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, err := g.readDate(item.End, true)
	if err != nil {
		return nil, fmt.Errorf("event %s end: %w", item.Id, err)
	}

	return &domain.CalendarEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		StartDate:   start,
		EndDate:     end,
		ColorID:     item.ColorId,
	}, nil
}

// readDate normalizes one event boundary to the property day boundary.
// All-day end dates are exclusive upstream and shifted back one day.
func (g *GoogleCalendar) readDate(dt *gcal.EventDateTime, isEnd bool) (time.Time, error) {
	if dt == nil {
		return time.Time{}, errors.New("missing date")
	}

	if dt.Date != "" {
		day, err := time.ParseInLocation(allDayLayout, dt.Date, g.loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse all-day date %q: %w", dt.Date, err)
		}
		if isEnd {
			day = day.AddDate(0, 0, -1)
		}
		return day, nil
	}

	ts, err := time.Parse(time.RFC3339, dt.DateTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", dt.DateTime, err)
	}
	return domain.AtDay(ts, g.loc), nil
}

func (g *GoogleCalendar) toExclusiveStart(t time.Time) string {
	return domain.AtDay(t, g.loc).Format(allDayLayout)
}

// toExclusiveEnd converts an inclusive end day to the exclusive upstream form.
func (g *GoogleCalendar) toExclusiveEnd(t time.Time) string {
	return domain.AtDay(t, g.loc).AddDate(0, 0, 1).Format(allDayLayout)
}

func isGone(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 404 || apiErr.Code == 410
	}
	return false
}
