package dto

type CreateBookingRequest struct {
	GuestName     string `json:"guest_name" binding:"required"`
	GuestEmail    string `json:"guest_email" binding:"required,email"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	AlternateRate bool   `json:"alternate_rate"`
}

type LinkEventsRequest struct {
	EventIDs []string `json:"event_ids" binding:"required,min=2"`
}

type UnlinkEventsRequest struct {
	EventIDs []string `json:"event_ids" binding:"required,min=1"`
}

type ConflictMarkerRequest struct {
	Key    string `json:"key" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=OVERLAPPING_BOOKINGS BOOKING_CALENDAR_EVENT OVERLAPPING_CALENDAR_EVENTS"`
	Reason string `json:"reason"`
}
