package domain

import "time"

type DayType string

const (
	DayArrival   DayType = "arrival"
	DayDeparture DayType = "departure"
	DayBoth      DayType = "both"
	DayOccupied  DayType = "occupied"
)

// DayInfo classifies one calendar day of the month grid. On a "both" day the
// departing and arriving colors are kept apart so the UI can render the two
// halves deterministically.
type DayInfo struct {
	Type DayType `json:"type"`
	// Color is set for occupied days: the color of the covering interval.
	Color          string `json:"color,omitempty"`
	ArrivingColor  string `json:"arriving_color,omitempty"`
	DepartingColor string `json:"departing_color,omitempty"`
}

type OccupancySource string

const (
	SourceBooking  OccupancySource = "booking"
	SourceCalendar OccupancySource = "calendar"
)

// OccupancyPeriod is one interval feeding the month grid, with the identity
// color used for visual grouping.
type OccupancyPeriod struct {
	ID        string          `json:"id"`
	Source    OccupancySource `json:"source"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	ColorID   string          `json:"color_id"`
	Summary   string          `json:"summary,omitempty"`
}

func (p *OccupancyPeriod) Interval() DateInterval {
	return DateInterval{Start: p.StartDate, End: p.EndDate}
}

// MonthGrid is the projected month: a day classification per day number plus
// the visible (non-contained) periods. OccupiedCount counts every interval
// including contained ones.
type MonthGrid struct {
	Year          int               `json:"year"`
	Month         time.Month        `json:"month"`
	Days          map[int]DayInfo   `json:"days"`
	Periods       []OccupancyPeriod `json:"periods"`
	OccupiedCount int               `json:"occupied_count"`
}
