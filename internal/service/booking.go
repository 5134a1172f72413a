package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/RazanXCode/MadinahHub/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	issuer      ports.TicketIssuer
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	issuer ports.TicketIssuer,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		issuer:      issuer,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book confirms a booking and its ticket for the user, or returns why
// it cannot. The duplicate-booking and capacity decisions are made by
// the repository inside one transaction; the checks here only short-
// circuit requests that cannot possibly succeed.
func (s *BookingService) Book(ctx context.Context, eventID, userID string) (*domain.BookingConfirmation, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.Bookable() {
		return nil, domain.ErrNotBookable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		UserID:    userID,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tkt, err := s.issuer.Issue(event, booking)
	if err != nil {
		return nil, fmt.Errorf("issue ticket: %w", err)
	}

	if err = s.bookingRepo.CreateWithTicket(ctx, booking, tkt); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("ticket_id", tkt.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", userID),
	)

	// After commit, off the critical path.
	s.notifier.BookingConfirmed(domain.BookingNotification{
		BookingID:      booking.ID,
		TicketID:       tkt.ID,
		EventID:        event.ID,
		UserID:         userID,
		EventTitle:     event.Title,
		EventLocation:  event.Location,
		StartDate:      event.StartDate,
		RedemptionCode: tkt.Code,
	})

	return &domain.BookingConfirmation{
		BookingID:      booking.ID,
		TicketID:       tkt.ID,
		RedemptionCode: tkt.Code,
	}, nil
}

// Cancel moves a confirmed booking and its ticket to cancelled and
// frees the slot. The booking history is retained.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	res, err := s.bookingRepo.CancelWithTicket(ctx, bookingID, userID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", res.Booking.ID),
		logger.String("event_id", res.Event.ID),
		logger.String("user_id", userID),
	)

	s.notifier.BookingCancelled(domain.BookingNotification{
		BookingID:     res.Booking.ID,
		TicketID:      res.Ticket.ID,
		EventID:       res.Event.ID,
		UserID:        userID,
		EventTitle:    res.Event.Title,
		EventLocation: res.Event.Location,
		StartDate:     res.Event.StartDate,
	})

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingSummary, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
