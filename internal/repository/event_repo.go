package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// EventRepository provides access to the event spend ledger. The ledger is
// append-only, so only list and create are exposed.
type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}
