package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const eventColumns = `id, title, description, location, capacity, start_date, end_date,
					  status, kind, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var (
		e      domain.Event
		capVal sql.NullInt64
	)
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &capVal,
		&e.StartDate, &e.EndDate, &e.Status, &e.Kind,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if capVal.Valid {
		c := int(capVal.Int64)
		e.Capacity = &c
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, location, capacity, start_date, end_date,
								  status, kind, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var capVal sql.NullInt64
	if e.Capacity != nil {
		capVal = sql.NullInt64{Int64: int64(*e.Capacity), Valid: true}
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, capVal,
		e.StartDate, e.EndDate, e.Status, e.Kind,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// GetDetails returns the event with its live valid-ticket count, the
// single source of truth for remaining capacity.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `SELECT e.id, e.title, e.description, e.location, e.capacity,
					 e.start_date, e.end_date, e.status, e.kind,
					 e.created_at, e.updated_at,
					 COUNT(t.id) FILTER (WHERE t.status = $2) AS valid_tickets
			  FROM events e
			  LEFT JOIN tickets t ON t.event_id = e.id
			  WHERE e.id = $1
			  GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.TicketStatusValid)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var (
		d      domain.EventDetails
		capVal sql.NullInt64
	)
	if err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Location, &capVal,
		&d.Event.StartDate, &d.Event.EndDate, &d.Event.Status, &d.Event.Kind,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.ValidTickets,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}
	if capVal.Valid {
		c := int(capVal.Int64)
		d.Event.Capacity = &c
	}

	return &d, nil
}

// ActivateStarted moves every upcoming event whose start date has
// passed to active and returns the ones it moved.
func (r *EventRepository) ActivateStarted(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND start_date <= now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusActive, domain.EventStatusUpcoming,
	)
	if err != nil {
		return nil, fmt.Errorf("activate started events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// FinishElapsed closes every event whose end date has passed and
// returns the ones it closed.
func (r *EventRepository) FinishElapsed(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $1, updated_at = now()
			  WHERE status <> $1 AND end_date < now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EventStatusFinished)
	if err != nil {
		return nil, fmt.Errorf("finish elapsed events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
