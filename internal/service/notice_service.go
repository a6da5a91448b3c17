package service

import (
	"context"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// NoticeService covers notice management. Every mutating operation returns
// the full refreshed list in canonical order rather than the affected item,
// so the front end can swap its view wholesale.
type NoticeService interface {
	List(ctx context.Context) ([]models.Notice, error)
	Create(ctx context.Context, req dto.NoticeCreateRequest, createdBy uint) ([]models.Notice, error)
	Update(ctx context.Context, id uint, req dto.NoticeUpdateRequest) ([]models.Notice, error)
	Delete(ctx context.Context, id uint) ([]models.Notice, error)
}

type noticeService struct {
	repo   repository.NoticeRepository
	policy *bluemonday.Policy
	logger zerolog.Logger
}

// NewNoticeService constructs the notice service. Notice details may carry
// markup from the composer, so they pass through a UGC sanitizer before
// storage.
func NewNoticeService(repo repository.NoticeRepository, logger zerolog.Logger) NoticeService {
	return &noticeService{
		repo:   repo,
		policy: bluemonday.UGCPolicy(),
		logger: logger.With().Str("component", "notice_service").Logger(),
	}
}

func (s *noticeService) List(ctx context.Context) ([]models.Notice, error) {
	return s.repo.List(ctx)
}

func (s *noticeService) Create(ctx context.Context, req dto.NoticeCreateRequest, createdBy uint) ([]models.Notice, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.DateTime) == "" {
		return nil, failValidation("title and dateTime are required")
	}

	dateTime, err := parseDate(req.DateTime)
	if err != nil {
		return nil, failValidation("invalid dateTime")
	}

	notice := models.Notice{
		Title:     title,
		Details:   s.policy.Sanitize(req.Details),
		Venue:     strings.TrimSpace(req.Venue),
		DateTime:  dateTime,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, &notice); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}

func (s *noticeService) Update(ctx context.Context, id uint, req dto.NoticeUpdateRequest) ([]models.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		notice.Title = strings.TrimSpace(*req.Title)
	}
	if req.Details != nil {
		notice.Details = s.policy.Sanitize(*req.Details)
	}
	if req.Venue != nil {
		notice.Venue = strings.TrimSpace(*req.Venue)
	}
	if req.DateTime != nil {
		dateTime, err := parseDate(*req.DateTime)
		if err != nil {
			return nil, failValidation("invalid dateTime")
		}
		notice.DateTime = dateTime
	}

	if err := s.repo.Save(ctx, &notice); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}

func (s *noticeService) Delete(ctx context.Context, id uint) ([]models.Notice, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}
