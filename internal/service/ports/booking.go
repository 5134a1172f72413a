package ports

import (
	"context"

	"github.com/RazanXCode/MadinahHub/internal/domain"
)

// BookingRepo persists bookings and their tickets. CreateWithTicket and
// CancelWithTicket are single atomic units: both serialize on the
// event row, so the capacity and duplicate-booking invariants hold
// under any interleaving, across service instances.
type BookingRepo interface {
	CreateWithTicket(ctx context.Context, b *domain.Booking, t *domain.Ticket) error
	CancelWithTicket(ctx context.Context, bookingID, userID string) (*domain.Cancellation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingSummary, error)
}
