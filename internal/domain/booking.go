package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses участвуют в проверке занятости и конфликтов.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

type Booking struct {
	ID            string        `json:"id"`
	GuestName     string        `json:"guest_name"`
	GuestEmail    string        `json:"guest_email"`
	Status        BookingStatus `json:"status"`
	StartDate     time.Time     `json:"start_date"` // inclusive, UTC midnight
	EndDate       time.Time     `json:"end_date"`   // inclusive, UTC midnight
	GoogleEventID string        `json:"google_event_id,omitempty"`
	PriceTotal    float64       `json:"price_total"`
	AlternateRate bool          `json:"alternate_rate"`
	AdminNotes    string        `json:"admin_notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Interval возвращает диапазон брони как закрытый интервал дат.
func (b *Booking) Interval() DateInterval {
	return DateInterval{Start: b.StartDate, End: b.EndDate}
}

type CreateBookingInput struct {
	GuestName     string
	GuestEmail    string
	StartDate     time.Time
	EndDate       time.Time
	AlternateRate bool
}

// SyncReport is the result of one reconcile run. Per-booking failures end up
// in Errors, the batch itself never aborts early.
type SyncReport struct {
	Created            int      `json:"created"`
	Updated            int      `json:"updated"`
	Deleted            int      `json:"deleted"`
	PulledFromCalendar int      `json:"pulled_from_calendar"`
	Errors             []string `json:"errors,omitempty"`
}
