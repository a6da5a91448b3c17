package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// BookRepository provides access to the library catalogue.
type BookRepository interface {
	List(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id uint) (models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Save(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository constructs a book repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&books).Error; err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) Save(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Book{}, id).Error
}
