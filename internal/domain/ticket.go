package domain

import "time"

type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Ticket is the redeemable artifact bound 1:1 to a confirmed booking.
// It is created and cancelled together with its booking; the
// valid -> used transition belongs to the door-redemption flow.
type Ticket struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event_id"`
	BookingID string       `json:"booking_id"`
	Status    TicketStatus `json:"status"`
	Code      string       `json:"code"` // opaque redemption code, unique per ticket
	CreatedAt time.Time    `json:"created_at"`
}
