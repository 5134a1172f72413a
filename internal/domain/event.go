package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusActive   EventStatus = "active"
	EventStatusFinished EventStatus = "finished"
)

type EventKind string

const (
	EventKindPublic  EventKind = "public"
	EventKindPrivate EventKind = "private"
)

type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Capacity    *int        `json:"capacity"` // nil means unlimited
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Status      EventStatus `json:"status"`
	Kind        EventKind   `json:"kind"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CapacityEnforced reports whether a booking consumes a slot of this
// event. Public events never enforce capacity, whatever value is stored.
func (e *Event) CapacityEnforced() bool {
	return e.Kind != EventKindPublic && e.Capacity != nil
}

// Bookable reports whether the event still accepts bookings.
func (e *Event) Bookable() bool {
	return e.Status != EventStatusFinished
}

// EventDetails is an event together with its current valid-ticket count.
type EventDetails struct {
	Event        Event `json:"event"`
	ValidTickets int   `json:"valid_tickets"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Capacity    *int
	StartDate   time.Time
	EndDate     time.Time
	Kind        EventKind
}
