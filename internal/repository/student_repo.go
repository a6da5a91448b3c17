package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/models"
)

// StudentRepository provides access to student records.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id uint) (models.Student, error)
	FindByRegNo(ctx context.Context, regno string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Save(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("created_at").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) FindByRegNo(ctx context.Context, regno string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("reg_no = ?", regno).First(&student).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Save(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	// Hard delete; the embedded leave history goes with the row.
	return r.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}
