package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// InfrastructureService covers infrastructure spend entries.
type InfrastructureService interface {
	List(ctx context.Context) ([]models.InfrastructureItem, error)
	Create(ctx context.Context, req dto.InfrastructureCreateRequest, createdBy uint) (models.InfrastructureItem, error)
	Update(ctx context.Context, id uint, req dto.InfrastructureUpdateRequest) (models.InfrastructureItem, error)
	Delete(ctx context.Context, id uint) error
}

type infrastructureService struct {
	repo   repository.InfrastructureRepository
	logger zerolog.Logger
}

// NewInfrastructureService constructs the infrastructure service.
func NewInfrastructureService(repo repository.InfrastructureRepository, logger zerolog.Logger) InfrastructureService {
	return &infrastructureService{
		repo:   repo,
		logger: logger.With().Str("component", "infrastructure_service").Logger(),
	}
}

func (s *infrastructureService) List(ctx context.Context) ([]models.InfrastructureItem, error) {
	return s.repo.List(ctx)
}

func (s *infrastructureService) Create(ctx context.Context, req dto.InfrastructureCreateRequest, createdBy uint) (models.InfrastructureItem, error) {
	details := strings.TrimSpace(req.Details)
	if details == "" {
		return models.InfrastructureItem{}, failValidation("details are required")
	}
	if req.AmountRs == nil {
		return models.InfrastructureItem{}, failValidation("amount (Rs) is required")
	}

	item := models.InfrastructureItem{
		Details:   details,
		AmountRs:  clampNonNegative(*req.AmountRs),
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return models.InfrastructureItem{}, err
	}

	return item, nil
}

func (s *infrastructureService) Update(ctx context.Context, id uint, req dto.InfrastructureUpdateRequest) (models.InfrastructureItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.InfrastructureItem{}, ErrInfrastructureNotFound
		}
		return models.InfrastructureItem{}, err
	}

	if req.Details != nil {
		item.Details = strings.TrimSpace(*req.Details)
	}
	if req.AmountRs != nil {
		item.AmountRs = clampNonNegative(*req.AmountRs)
	}

	if err := s.repo.Save(ctx, &item); err != nil {
		return models.InfrastructureItem{}, err
	}

	return item, nil
}

func (s *infrastructureService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInfrastructureNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
