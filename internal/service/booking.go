package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

var allStatuses = []domain.BookingStatus{
	domain.BookingStatusPending,
	domain.BookingStatusApproved,
	domain.BookingStatusRejected,
	domain.BookingStatusCancelled,
}

// transitions a booking may take under admin action.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusPending:  {domain.BookingStatusApproved, domain.BookingStatusRejected, domain.BookingStatusCancelled},
	domain.BookingStatusApproved: {domain.BookingStatusCancelled},
}

type BookingService struct {
	repo   ports.BookingRepo
	pricer ports.Pricer
	loc    *time.Location
	logger logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	pricer ports.Pricer,
	loc *time.Location,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:   repo,
		pricer: pricer,
		loc:    loc,
		logger: logger,
	}
}

// Create accepts a booking request as pending. The date invariant is
// enforced here, at the boundary, never inside the reconciler.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.GuestName == "" {
		return nil, fmt.Errorf("%w: guest_name is required", domain.ErrValidation)
	}
	if input.GuestEmail == "" {
		return nil, fmt.Errorf("%w: guest_email is required", domain.ErrValidation)
	}

	start := toUTCDay(input.StartDate)
	end := toUTCDay(input.EndDate)
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	quote := s.pricer.Price(start, end, input.AlternateRate)

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		GuestName:     input.GuestName,
		GuestEmail:    input.GuestEmail,
		Status:        domain.BookingStatusPending,
		StartDate:     start,
		EndDate:       end,
		PriceTotal:    quote.Total,
		AlternateRate: input.AlternateRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("guest", booking.GuestName),
		logger.String("start", start.Format("2006-01-02")),
		logger.String("end", end.Format("2006-01-02")),
	)

	return booking, nil
}

// SetStatus applies one admin transition with an audit note naming the actor.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus, actor string) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !allowed(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, status)
	}

	note := fmt.Sprintf("\n[%s] %s: status %s -> %s",
		time.Now().UTC().Format(time.RFC3339), actor, booking.Status, status)
	if err := s.repo.UpdateStatus(ctx, bookingID, status, note); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)),
		logger.String("actor", actor),
	)

	booking.Status = status
	booking.AdminNotes += note
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	if len(statuses) == 0 {
		statuses = allStatuses
	}
	return s.repo.List(ctx, statuses)
}

func allowed(from, to domain.BookingStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// toUTCDay stores a calendar date as UTC midnight, the ledger convention.
func toUTCDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
