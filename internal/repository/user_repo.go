package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// UserRepository provides access to staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
