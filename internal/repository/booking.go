package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, guest_name, guest_email, status, start_date, end_date,
	google_event_id, price_total, alternate_rate, admin_notes, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.GuestName, b.GuestEmail, b.Status, b.StartDate, b.EndDate,
		b.GoogleEventID, b.PriceTotal, b.AlternateRate, b.AdminNotes,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = ANY($1)
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListWithEventRef возвращает брони указанных статусов, у которых ещё есть
// ссылка на внешнее событие.
func (r *BookingRepository) ListWithEventRef(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = ANY($1) AND google_event_id <> ''
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list bookings with event ref: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = ANY($3) AND start_date <= $2 AND end_date >= $1
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// SetEventID stores the external event reference, but only while the booking
// is still approved. Returns false when the guard did not match, so the
// caller can compensate (delete the just-created event).
func (r *BookingRepository) SetEventID(ctx context.Context, bookingID, eventID string) (bool, error) {
	query := `UPDATE bookings
			  SET google_event_id = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, eventID, domain.BookingStatusApproved)
	if err != nil {
		return false, fmt.Errorf("set event id: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set event id rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) ClearEventID(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings
			  SET google_event_id = '', updated_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID); err != nil {
		return fmt.Errorf("clear event id: %w", err)
	}

	return nil
}

// PullCalendarDates absorbs drift: the booking takes over the dates observed
// on the external calendar, with the recomputed price and an audit note
// appended. Guarded on the booking still being approved; false means a
// concurrent status change won.
func (r *BookingRepository) PullCalendarDates(
	ctx context.Context,
	bookingID string,
	start, end time.Time,
	priceTotal float64,
	note string,
) (bool, error) {
	query := `UPDATE bookings
			  SET start_date = $2, end_date = $3, price_total = $4,
			      admin_notes = admin_notes || $5, updated_at = now()
			  WHERE id = $1 AND status = $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID, start, end, priceTotal, note, domain.BookingStatusApproved,
	)
	if err != nil {
		return false, fmt.Errorf("pull calendar dates: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("pull calendar dates rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, note string) error {
	query := `UPDATE bookings
			  SET status = $2, admin_notes = admin_notes || $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, status, note)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.GuestName, &b.GuestEmail, &b.Status, &b.StartDate, &b.EndDate,
		&b.GoogleEventID, &b.PriceTotal, &b.AlternateRate, &b.AdminNotes,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
