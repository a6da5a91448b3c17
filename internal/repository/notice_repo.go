package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// NoticeRepository provides access to notices. List always applies the
// canonical ordering: dateTime descending with creation time as tie-break.
type NoticeRepository interface {
	List(ctx context.Context) ([]models.Notice, error)
	FindByID(ctx context.Context, id uint) (models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Save(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id uint) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository constructs a notice repository.
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice
	if err := r.db.WithContext(ctx).Order("date_time DESC, created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *noticeRepository) FindByID(ctx context.Context, id uint) (models.Notice, error) {
	var notice models.Notice
	if err := r.db.WithContext(ctx).First(&notice, id).Error; err != nil {
		return models.Notice{}, err
	}

	return notice, nil
}

func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) Save(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *noticeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Notice{}, id).Error
}
