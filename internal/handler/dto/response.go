package dto

import (
	"time"

	"github.com/RazanXCode/MadinahHub/internal/capacity"
	"github.com/RazanXCode/MadinahHub/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    *int   `json:"capacity,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	Kind        string `json:"kind"`
	CreatedAt   string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse `json:"event"`
	ValidTickets   int           `json:"valid_tickets"`
	RemainingSlots *int          `json:"remaining_slots,omitempty"` // absent for uncapped events
}

type BookingConfirmationResponse struct {
	BookingID      string `json:"booking_id"`
	TicketID       string `json:"ticket_id"`
	RedemptionCode string `json:"redemption_code"`
}

type BookingSummaryResponse struct {
	BookingID      string `json:"booking_id"`
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	Status         string `json:"status"`
	TicketStatus   string `json:"ticket_status"`
	RedemptionCode string `json:"redemption_code,omitempty"`
	BookedAt       string `json:"booked_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Capacity:    e.Capacity,
		StartDate:   e.StartDate.Format(time.RFC3339),
		EndDate:     e.EndDate.Format(time.RFC3339),
		Status:      string(e.Status),
		Kind:        string(e.Kind),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		Event:        ToEventResponse(&d.Event),
		ValidTickets: d.ValidTickets,
	}
	if d.Event.CapacityEnforced() {
		remaining := capacity.Remaining(&d.Event, d.ValidTickets)
		resp.RemainingSlots = &remaining
	}
	return resp
}

func ToBookingConfirmationResponse(c *domain.BookingConfirmation) BookingConfirmationResponse {
	return BookingConfirmationResponse{
		BookingID:      c.BookingID,
		TicketID:       c.TicketID,
		RedemptionCode: c.RedemptionCode,
	}
}

func ToBookingSummaryResponse(s *domain.BookingSummary) BookingSummaryResponse {
	return BookingSummaryResponse{
		BookingID:      s.BookingID,
		EventID:        s.EventID,
		EventTitle:     s.EventTitle,
		Status:         string(s.Status),
		TicketStatus:   string(s.TicketStatus),
		RedemptionCode: s.RedemptionCode,
		BookedAt:       s.BookedAt.Format(time.RFC3339),
	}
}
