package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrEventNotFound   = errors.New("calendar event not found")

	// ErrCalendarUnavailable: адаптер не настроен, про событие ничего не
	// известно. Не путать с ErrEventNotFound — ссылки чистить нельзя.
	ErrCalendarUnavailable = errors.New("calendar adapter is not configured")
)

var (
	ErrInvalidDateRange  = errors.New("end date precedes start date")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotLinkable       = errors.New("at least two event ids required")
)

var (
	// ErrAlreadyNotified: кто-то успел отметить конфликт первым, пропускаем.
	ErrAlreadyNotified = errors.New("conflict already notified")
	ErrNoRecipients    = errors.New("no notification recipient reachable")
)

var (
	ErrValidation = errors.New("validation error")
)
