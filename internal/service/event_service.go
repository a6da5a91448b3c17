package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// EventService covers the append-only event spend ledger. There is no
// update or delete: entries are immutable once created.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, req dto.EventCreateRequest, createdBy uint) (models.Event, error)
}

type eventService struct {
	repo   repository.EventRepository
	logger zerolog.Logger
}

// NewEventService constructs the event service.
func NewEventService(repo repository.EventRepository, logger zerolog.Logger) EventService {
	return &eventService{
		repo:   repo,
		logger: logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) Create(ctx context.Context, req dto.EventCreateRequest, createdBy uint) (models.Event, error) {
	details := strings.TrimSpace(req.Details)
	if details == "" {
		return models.Event{}, failValidation("event details are required")
	}
	if req.AmountRs == nil {
		return models.Event{}, failValidation("amount (Rs) is required")
	}

	event := models.Event{
		Details:   details,
		AmountRs:  clampNonNegative(*req.AmountRs),
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return models.Event{}, err
	}

	return event, nil
}
