package ports

import "github.com/RazanXCode/MadinahHub/internal/domain"

type TicketIssuer interface {
	Issue(event *domain.Event, booking *domain.Booking) (*domain.Ticket, error)
}
