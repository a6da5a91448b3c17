package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// InfrastructureRepository provides access to infrastructure spend entries.
type InfrastructureRepository interface {
	List(ctx context.Context) ([]models.InfrastructureItem, error)
	FindByID(ctx context.Context, id uint) (models.InfrastructureItem, error)
	Create(ctx context.Context, item *models.InfrastructureItem) error
	Save(ctx context.Context, item *models.InfrastructureItem) error
	Delete(ctx context.Context, id uint) error
}

type infrastructureRepository struct {
	db *gorm.DB
}

// NewInfrastructureRepository constructs an infrastructure repository.
func NewInfrastructureRepository(db *gorm.DB) InfrastructureRepository {
	return &infrastructureRepository{db: db}
}

func (r *infrastructureRepository) List(ctx context.Context) ([]models.InfrastructureItem, error) {
	var items []models.InfrastructureItem
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *infrastructureRepository) FindByID(ctx context.Context, id uint) (models.InfrastructureItem, error) {
	var item models.InfrastructureItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return models.InfrastructureItem{}, err
	}

	return item, nil
}

func (r *infrastructureRepository) Create(ctx context.Context, item *models.InfrastructureItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *infrastructureRepository) Save(ctx context.Context, item *models.InfrastructureItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *infrastructureRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.InfrastructureItem{}, id).Error
}
