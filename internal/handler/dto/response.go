package dto

import (
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID            string  `json:"id"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	Status        string  `json:"status"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	GoogleEventID string  `json:"google_event_id,omitempty"`
	PriceTotal    float64 `json:"price_total"`
	AlternateRate bool    `json:"alternate_rate"`
	CreatedAt     string  `json:"created_at"`
}

type EventResponse struct {
	ID            string `json:"id"`
	Summary       string `json:"summary"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ColorID       string `json:"color_id,omitempty"`
	Informational bool   `json:"informational"`
}

type ConflictResponse struct {
	Type        string            `json:"type"`
	Key         string            `json:"key"`
	Severity    string            `json:"severity"`
	Description string            `json:"description"`
	Potential   bool              `json:"potential,omitempty"`
	Bookings    []BookingResponse `json:"bookings,omitempty"`
	Events      []EventResponse   `json:"events,omitempty"`
}

type SyncReportResponse struct {
	Created            int      `json:"created"`
	Updated            int      `json:"updated"`
	Deleted            int      `json:"deleted"`
	PulledFromCalendar int      `json:"pulled_from_calendar"`
	Errors             []string `json:"errors,omitempty"`
}

type DayInfoResponse struct {
	Type           string `json:"type"`
	Color          string `json:"color,omitempty"`
	ArrivingColor  string `json:"arriving_color,omitempty"`
	DepartingColor string `json:"departing_color,omitempty"`
}

type PeriodResponse struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	ColorID   string `json:"color_id,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type MonthGridResponse struct {
	Year          int                     `json:"year"`
	Month         int                     `json:"month"`
	Days          map[int]DayInfoResponse `json:"days"`
	Periods       []PeriodResponse        `json:"periods"`
	OccupiedCount int                     `json:"occupied_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		Status:        string(b.Status),
		StartDate:     b.StartDate.Format(dateLayout),
		EndDate:       b.EndDate.Format(dateLayout),
		GoogleEventID: b.GoogleEventID,
		PriceTotal:    b.PriceTotal,
		AlternateRate: b.AlternateRate,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.CalendarEvent) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Summary:       e.Summary,
		StartDate:     e.StartDate.Format(dateLayout),
		EndDate:       e.EndDate.Format(dateLayout),
		ColorID:       e.ColorID,
		Informational: e.Informational(),
	}
}

func ToConflictResponse(c domain.Conflict) ConflictResponse {
	resp := ConflictResponse{
		Type:        string(c.Type()),
		Key:         c.Key(),
		Severity:    string(c.Severity()),
		Description: c.Description(),
	}

	switch v := c.(type) {
	case *domain.BookingOverlapConflict:
		resp.Potential = v.Potential
		for i := range v.Bookings {
			resp.Bookings = append(resp.Bookings, ToBookingResponse(&v.Bookings[i]))
		}
	case *domain.BookingEventConflict:
		resp.Bookings = append(resp.Bookings, ToBookingResponse(&v.Booking))
		resp.Events = append(resp.Events, ToEventResponse(&v.Event))
	case *domain.EventOverlapConflict:
		for i := range v.Events {
			resp.Events = append(resp.Events, ToEventResponse(&v.Events[i]))
		}
	}

	return resp
}

func ToSyncReportResponse(r *domain.SyncReport) SyncReportResponse {
	return SyncReportResponse{
		Created:            r.Created,
		Updated:            r.Updated,
		Deleted:            r.Deleted,
		PulledFromCalendar: r.PulledFromCalendar,
		Errors:             r.Errors,
	}
}

func ToMonthGridResponse(g *domain.MonthGrid) MonthGridResponse {
	days := make(map[int]DayInfoResponse, len(g.Days))
	for day, info := range g.Days {
		days[day] = DayInfoResponse{
			Type:           string(info.Type),
			Color:          info.Color,
			ArrivingColor:  info.ArrivingColor,
			DepartingColor: info.DepartingColor,
		}
	}

	periods := make([]PeriodResponse, 0, len(g.Periods))
	for _, p := range g.Periods {
		periods = append(periods, PeriodResponse{
			ID:        p.ID,
			Source:    string(p.Source),
			StartDate: p.StartDate.Format(dateLayout),
			EndDate:   p.EndDate.Format(dateLayout),
			ColorID:   p.ColorID,
			Summary:   p.Summary,
		})
	}

	return MonthGridResponse{
		Year:          g.Year,
		Month:         int(g.Month),
		Days:          days,
		Periods:       periods,
		OccupiedCount: g.OccupiedCount,
	}
}
