package scheduler

import (
	"context"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventLifecycle interface {
	ActivateStarted(ctx context.Context) ([]*domain.Event, error)
	FinishElapsed(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically advances event statuses along their dates:
// upcoming events past their start become active, events past their
// end become finished and stop accepting bookings.
type Scheduler struct {
	eventService eventLifecycle
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventLifecycle,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started, err := s.eventService.ActivateStarted(ctx)
	if err != nil {
		s.logger.Error("failed to activate started events",
			logger.String("error", err.Error()),
		)
	} else {
		for _, e := range started {
			s.logger.Info("event started",
				logger.String("event_id", e.ID),
				logger.String("title", e.Title),
			)
		}
	}

	finished, err := s.eventService.FinishElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to finish elapsed events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range finished {
		s.logger.Info("event finished",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
