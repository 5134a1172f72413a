package domain

import "time"

// BookingNotification carries the identifiers and display fields needed
// to render a booking side effect. It is emitted only after the booking
// transaction has committed.
type BookingNotification struct {
	BookingID      string
	TicketID       string
	EventID        string
	UserID         string
	EventTitle     string
	EventLocation  string
	StartDate      time.Time
	RedemptionCode string
}
