package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// BookService covers the library catalogue.
type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Create(ctx context.Context, req dto.BookCreateRequest, createdBy uint) (models.Book, error)
	Update(ctx context.Context, id uint, req dto.BookUpdateRequest) (models.Book, error)
	Delete(ctx context.Context, id uint) error
}

type bookService struct {
	repo      repository.BookRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewBookService constructs the book service.
func NewBookService(repo repository.BookRepository, validate *validator.Validate, logger zerolog.Logger) BookService {
	return &bookService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "book_service").Logger(),
	}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) Create(ctx context.Context, req dto.BookCreateRequest, createdBy uint) (models.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Book{}, failValidation("title is required")
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		return models.Book{}, failValidation("author is required")
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return models.Book{}, failValidation("subject is required")
	}
	if req.Quantity == nil {
		return models.Book{}, failValidation("quantity is required")
	}

	book := models.Book{
		Title:     title,
		Author:    author,
		Subject:   subject,
		Quantity:  clampNonNegativeInt(*req.Quantity),
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, &book); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (s *bookService) Update(ctx context.Context, id uint, req dto.BookUpdateRequest) (models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Book{}, ErrBookNotFound
		}
		return models.Book{}, err
	}

	if req.Title != nil {
		book.Title = strings.TrimSpace(*req.Title)
	}
	if req.Author != nil {
		book.Author = strings.TrimSpace(*req.Author)
	}
	if req.Subject != nil {
		book.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Quantity != nil {
		book.Quantity = clampNonNegativeInt(*req.Quantity)
	}

	if err := s.repo.Save(ctx, &book); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
