package ticket

import (
	"fmt"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/google/uuid"
)

// CodeEncoder turns a ticket payload into an opaque redemption code.
// Rendering the code into a scannable image is a concern of whoever
// presents the ticket, not of this engine.
type CodeEncoder interface {
	Encode(payload string) (string, error)
}

// Issuer mints the single valid ticket bound to a confirmed booking.
type Issuer struct {
	encoder CodeEncoder
}

func NewIssuer(encoder CodeEncoder) *Issuer {
	return &Issuer{encoder: encoder}
}

func (i *Issuer) Issue(event *domain.Event, booking *domain.Booking) (*domain.Ticket, error) {
	payload := fmt.Sprintf("%s-%s-%s", booking.ID, event.Title, event.Location)

	code, err := i.encoder.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encode redemption code: %w", err)
	}

	return &domain.Ticket{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		BookingID: booking.ID,
		Status:    domain.TicketStatusValid,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}, nil
}
