package domain

import "time"

type BookingStatus string

// A booking request in flight has no persisted status: only the two
// terminal outcomes are ever stored.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        string        `json:"id"`
	EventID   string        `json:"event_id"`
	UserID    string        `json:"user_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingConfirmation is the caller-visible result of a successful booking.
type BookingConfirmation struct {
	BookingID      string `json:"booking_id"`
	TicketID       string `json:"ticket_id"`
	RedemptionCode string `json:"redemption_code"`
}

// BookingSummary is one row of a user's booking history.
type BookingSummary struct {
	BookingID      string        `json:"booking_id"`
	EventID        string        `json:"event_id"`
	EventTitle     string        `json:"event_title"`
	Status         BookingStatus `json:"status"`
	TicketStatus   TicketStatus  `json:"ticket_status"`
	RedemptionCode string        `json:"redemption_code"`
	BookedAt       time.Time     `json:"booked_at"`
}

// Cancellation carries everything a cancel commit produced, so side
// effects can be dispatched without re-reading storage.
type Cancellation struct {
	Booking Booking
	Ticket  Ticket
	Event   Event
}
