package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RazanXCode/MadinahHub/internal/capacity"
	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateWithTicket commits a booking and its ticket as one unit.
//
// The event row is locked FOR UPDATE for the whole decision, so the
// bookability check, the duplicate-booking check and the capacity
// count-and-insert are a single serialized step per event. Two
// concurrent requests for the last slot cannot both observe it free.
func (r *BookingRepository) CreateWithTicket(ctx context.Context, b *domain.Booking, t *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `SELECT id, kind, status, capacity FROM events WHERE id = $1 FOR UPDATE`
	var (
		e      domain.Event
		capVal sql.NullInt64
	)
	if err = tx.QueryRowContext(ctx, eventQuery, b.EventID).
		Scan(&e.ID, &e.Kind, &e.Status, &capVal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return classify(fmt.Errorf("lock event: %w", err))
	}
	if capVal.Valid {
		c := int(capVal.Int64)
		e.Capacity = &c
	}

	if !e.Bookable() {
		return domain.ErrNotBookable
	}

	dupQuery := `SELECT COUNT(*) FROM bookings
				 WHERE event_id = $1 AND user_id = $2 AND status = $3`
	var active int
	if err = tx.QueryRowContext(
		ctx, dupQuery, b.EventID, b.UserID, domain.BookingStatusConfirmed,
	).Scan(&active); err != nil {
		return classify(fmt.Errorf("count active bookings: %w", err))
	}
	if active > 0 {
		return domain.ErrAlreadyBooked
	}

	if e.CapacityEnforced() {
		validQuery := `SELECT COUNT(*) FROM tickets
					   WHERE event_id = $1 AND status = $2`
		var valid int
		if err = tx.QueryRowContext(
			ctx, validQuery, b.EventID, domain.TicketStatusValid,
		).Scan(&valid); err != nil {
			return classify(fmt.Errorf("count valid tickets: %w", err))
		}
		if err = capacity.Check(&e, valid); err != nil {
			return err
		}
	}

	bookingQuery := `INSERT INTO bookings (id, event_id, user_id, status, created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery, b.ID, b.EventID,
		b.UserID, b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return classify(fmt.Errorf("insert booking: %w", err))
	}

	ticketQuery := `INSERT INTO tickets (id, event_id, booking_id, status, code, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, ticketQuery, t.ID, t.EventID,
		t.BookingID, t.Status, t.Code, t.CreatedAt,
	); err != nil {
		return classify(fmt.Errorf("insert ticket: %w", err))
	}

	if err = tx.Commit(); err != nil {
		return classify(fmt.Errorf("commit: %w", err))
	}

	return nil
}

// CancelWithTicket moves a confirmed booking and its ticket to
// cancelled in one transaction. It takes the same event-row lock as
// reservation, so the freed slot is visible to any reservation that
// commits after it, and never to one already holding the lock.
func (r *BookingRepository) CancelWithTicket(ctx context.Context, bookingID, userID string) (*domain.Cancellation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var res domain.Cancellation

	bookingQuery := `SELECT b.id, b.event_id, b.user_id, b.status, b.created_at, b.updated_at,
							t.id, t.event_id, t.booking_id, t.status, t.code, t.created_at
					 FROM bookings b
					 JOIN tickets t ON t.booking_id = b.id
					 WHERE b.id = $1`
	if err = tx.QueryRowContext(ctx, bookingQuery, bookingID).Scan(
		&res.Booking.ID, &res.Booking.EventID, &res.Booking.UserID,
		&res.Booking.Status, &res.Booking.CreatedAt, &res.Booking.UpdatedAt,
		&res.Ticket.ID, &res.Ticket.EventID, &res.Ticket.BookingID,
		&res.Ticket.Status, &res.Ticket.Code, &res.Ticket.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify(fmt.Errorf("get booking: %w", err))
	}

	if res.Booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if res.Booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	eventQuery := `SELECT id, title, description, location, capacity, start_date, end_date,
						  status, kind, created_at, updated_at
				   FROM events WHERE id = $1 FOR UPDATE`
	var capVal sql.NullInt64
	if err = tx.QueryRowContext(ctx, eventQuery, res.Booking.EventID).Scan(
		&res.Event.ID, &res.Event.Title, &res.Event.Description, &res.Event.Location,
		&capVal, &res.Event.StartDate, &res.Event.EndDate,
		&res.Event.Status, &res.Event.Kind, &res.Event.CreatedAt, &res.Event.UpdatedAt,
	); err != nil {
		return nil, classify(fmt.Errorf("lock event: %w", err))
	}
	if capVal.Valid {
		c := int(capVal.Int64)
		res.Event.Capacity = &c
	}

	// Guarded on the current status: if a concurrent cancel won the
	// race, zero rows update and the slot is released exactly once.
	updateBooking := `UPDATE bookings SET status = $2, updated_at = now()
					  WHERE id = $1 AND status = $3`
	affected, err := tx.ExecContext(
		ctx, updateBooking, bookingID,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return nil, classify(fmt.Errorf("cancel booking: %w", err))
	}
	rows, err := affected.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrAlreadyCancelled
	}

	updateTicket := `UPDATE tickets SET status = $2
					 WHERE booking_id = $1 AND status = $3`
	if _, err = tx.ExecContext(
		ctx, updateTicket, bookingID,
		domain.TicketStatusCancelled, domain.TicketStatusValid,
	); err != nil {
		return nil, classify(fmt.Errorf("cancel ticket: %w", err))
	}

	if err = tx.Commit(); err != nil {
		return nil, classify(fmt.Errorf("commit: %w", err))
	}

	res.Booking.Status = domain.BookingStatusCancelled
	res.Ticket.Status = domain.TicketStatusCancelled

	return &res, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingSummary, error) {
	query := `SELECT b.id, b.event_id, e.title, b.status, t.status, t.code, b.created_at
			  FROM bookings b
			  JOIN tickets t ON t.booking_id = b.id
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		if err = rows.Scan(
			&s.BookingID, &s.EventID, &s.EventTitle,
			&s.Status, &s.TicketStatus, &s.RedemptionCode, &s.BookedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking summary: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
