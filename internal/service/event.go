package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/RazanXCode/MadinahHub/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.EventKindPrivate
	}
	if kind != domain.EventKindPublic && kind != domain.EventKindPrivate {
		return nil, fmt.Errorf("%w: unknown event kind %q", domain.ErrValidation, input.Kind)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Capacity:    input.Capacity,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      domain.EventStatusUpcoming,
		Kind:        kind,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ActivateStarted moves upcoming events past their start date to
// active. Active events still accept bookings.
func (s *EventService) ActivateStarted(ctx context.Context) ([]*domain.Event, error) {
	started, err := s.repo.ActivateStarted(ctx)
	if err != nil {
		return nil, fmt.Errorf("activate started: %w", err)
	}
	return started, nil
}

// FinishElapsed closes events whose end date has passed. Finished
// events reject new bookings.
func (s *EventService) FinishElapsed(ctx context.Context) ([]*domain.Event, error) {
	finished, err := s.repo.FinishElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("finish elapsed: %w", err)
	}
	return finished, nil
}
