package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// TeacherSalaryService covers the salary figures and the per-month salary
// record sub-collection.
type TeacherSalaryService interface {
	Salary(ctx context.Context, teacherID uint) (dto.SalaryResponse, error)
	UpdateSalary(ctx context.Context, teacherID uint, req dto.SalaryUpdateRequest) (dto.SalaryResponse, error)
	Records(ctx context.Context, teacherID uint) ([]models.SalaryRecord, error)
	AddRecord(ctx context.Context, teacherID uint, req dto.SalaryRecordCreateRequest) ([]models.SalaryRecord, error)
	UpdateRecord(ctx context.Context, teacherID uint, recordID string, req dto.SalaryRecordUpdateRequest) ([]models.SalaryRecord, error)
	DeleteRecord(ctx context.Context, teacherID uint, recordID string) ([]models.SalaryRecord, error)
}

type teacherSalaryService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewTeacherSalaryService constructs the salary service.
func NewTeacherSalaryService(users repository.UserRepository, logger zerolog.Logger) TeacherSalaryService {
	return &teacherSalaryService{
		users:  users,
		logger: logger.With().Str("component", "teacher_salary_service").Logger(),
	}
}

func (s *teacherSalaryService) Salary(ctx context.Context, teacherID uint) (dto.SalaryResponse, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return dto.SalaryResponse{}, err
	}

	return salaryResponse(teacher), nil
}

// UpdateSalary applies the increment first, then any absolute figures, and
// finally clamps paid to total. Remaining is derived, never stored.
func (s *teacherSalaryService) UpdateSalary(ctx context.Context, teacherID uint, req dto.SalaryUpdateRequest) (dto.SalaryResponse, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return dto.SalaryResponse{}, err
	}

	if req.PayIncrement != nil {
		teacher.PaidSalary = clampNonNegative(teacher.PaidSalary + *req.PayIncrement)
	}
	if req.TotalSalary != nil {
		if *req.TotalSalary < 0 {
			return dto.SalaryResponse{}, failValidation("totalSalary must be a non-negative number")
		}
		teacher.TotalSalary = *req.TotalSalary
	}
	if req.PaidSalary != nil {
		if *req.PaidSalary < 0 {
			return dto.SalaryResponse{}, failValidation("paidSalary must be a non-negative number")
		}
		teacher.PaidSalary = *req.PaidSalary
	}

	teacher.ClampSalary()

	if err := s.users.Save(ctx, &teacher); err != nil {
		return dto.SalaryResponse{}, err
	}

	return salaryResponse(teacher), nil
}

// Records returns the salary records sorted by month, newest first.
func (s *teacherSalaryService) Records(ctx context.Context, teacherID uint) ([]models.SalaryRecord, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	records := make([]models.SalaryRecord, len(teacher.SalaryRecords))
	copy(records, teacher.SalaryRecords)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Month > records[j].Month
	})

	return records, nil
}

// AddRecord posts a snapshot for a month. The month is the key: an existing
// record for it is replaced in place, keeping the list length unchanged.
func (s *teacherSalaryService) AddRecord(ctx context.Context, teacherID uint, req dto.SalaryRecordCreateRequest) ([]models.SalaryRecord, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	month := strings.TrimSpace(req.Month)
	if month == "" {
		return nil, failValidation("month (YYYY-MM) is required")
	}
	if req.Total == nil || req.Paid == nil {
		return nil, failValidation("total and paid must be numbers")
	}
	if !models.ValidSalaryStatus(req.Status) {
		return nil, failValidation("invalid status")
	}

	record := models.SalaryRecord{
		ID:     uuid.NewString(),
		Month:  month,
		Total:  clampNonNegative(*req.Total),
		Paid:   clampNonNegative(*req.Paid),
		Status: req.Status,
	}

	replaced := false
	for i, existing := range teacher.SalaryRecords {
		if existing.Month == month {
			record.ID = existing.ID
			teacher.SalaryRecords[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		teacher.SalaryRecords = append(teacher.SalaryRecords, record)
	}

	if err := s.users.Save(ctx, &teacher); err != nil {
		return nil, err
	}

	return teacher.SalaryRecords, nil
}

func (s *teacherSalaryService) UpdateRecord(ctx context.Context, teacherID uint, recordID string, req dto.SalaryRecordUpdateRequest) ([]models.SalaryRecord, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, record := range teacher.SalaryRecords {
		if record.ID == recordID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrSalaryRecordNotFound
	}

	if req.Month != nil {
		teacher.SalaryRecords[index].Month = strings.TrimSpace(*req.Month)
	}
	if req.Total != nil {
		if *req.Total < 0 {
			return nil, failValidation("total must be non-negative")
		}
		teacher.SalaryRecords[index].Total = *req.Total
	}
	if req.Paid != nil {
		if *req.Paid < 0 {
			return nil, failValidation("paid must be non-negative")
		}
		teacher.SalaryRecords[index].Paid = *req.Paid
	}
	if req.Status != nil {
		if !models.ValidSalaryStatus(*req.Status) {
			return nil, failValidation("invalid status")
		}
		teacher.SalaryRecords[index].Status = *req.Status
	}

	if err := s.users.Save(ctx, &teacher); err != nil {
		return nil, err
	}

	return teacher.SalaryRecords, nil
}

func (s *teacherSalaryService) DeleteRecord(ctx context.Context, teacherID uint, recordID string) ([]models.SalaryRecord, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	kept := teacher.SalaryRecords[:0]
	found := false
	for _, record := range teacher.SalaryRecords {
		if record.ID == recordID {
			found = true
			continue
		}
		kept = append(kept, record)
	}
	if !found {
		return nil, ErrSalaryRecordNotFound
	}

	teacher.SalaryRecords = kept
	if err := s.users.Save(ctx, &teacher); err != nil {
		return nil, err
	}

	return teacher.SalaryRecords, nil
}

func salaryResponse(teacher models.User) dto.SalaryResponse {
	return dto.SalaryResponse{
		TotalSalary: teacher.TotalSalary,
		PaidSalary:  teacher.PaidSalary,
		Remaining:   teacher.RemainingSalary(),
	}
}
