package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// Students may accumulate at most this many leaves per calendar month.
const studentLeaveCap = 10

// StudentService covers student management and the embedded leave
// sub-resource.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) (models.Student, error)
	UpdateMarks(ctx context.Context, id uint, req dto.MarksUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id uint) error
	Leaves(ctx context.Context, id uint) ([]models.Leave, error)
	AddLeave(ctx context.Context, id uint, req dto.LeaveCreateRequest) ([]models.Leave, error)
	UpdateLeave(ctx context.Context, id uint, leaveID string, req dto.LeaveUpdateRequest) ([]models.Leave, error)
	DeleteLeave(ctx context.Context, id uint, leaveID string) ([]models.Leave, error)
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, failValidation("please provide name, regno and mobile")
	}

	regno := strings.TrimSpace(req.RegNo)
	if _, err := s.repo.FindByRegNo(ctx, regno); err == nil {
		return models.Student{}, failValidation("student already exists with given regno")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Student{}, err
	}

	division := strings.TrimSpace(req.Division)
	if !models.ValidDivision(division) {
		return models.Student{}, failValidation("division must be A or B")
	}

	feeStatus := req.FeeStatus
	if feeStatus == "" {
		feeStatus = models.FeeStatusPending
	}
	if !models.ValidFeeStatus(feeStatus) {
		return models.Student{}, failValidation("invalid fee status")
	}

	marks := 0.0
	if req.Marks != nil {
		marks = *req.Marks
	}

	student := models.Student{
		Name:      strings.TrimSpace(req.Name),
		RegNo:     regno,
		Mobile:    strings.TrimSpace(req.Mobile),
		Division:  division,
		FeeStatus: feeStatus,
		Marks:     marks,
		CGPA:      0,
	}
	if err := s.repo.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

// Update touches identity and fee fields only; marks and cgpa have their
// own path with a wider role set.
func (s *studentService) Update(ctx context.Context, id uint, req dto.StudentUpdateRequest) (models.Student, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	if req.RegNo != nil {
		regno := strings.TrimSpace(*req.RegNo)
		if regno != student.RegNo {
			if _, err := s.repo.FindByRegNo(ctx, regno); err == nil {
				return models.Student{}, failValidation("student already exists with given regno")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Student{}, err
			}
		}
		student.RegNo = regno
	}
	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Mobile != nil {
		student.Mobile = strings.TrimSpace(*req.Mobile)
	}
	if req.Division != nil {
		division := strings.TrimSpace(*req.Division)
		if !models.ValidDivision(division) {
			return models.Student{}, failValidation("division must be A or B")
		}
		student.Division = division
	}
	if req.FeeStatus != nil {
		if !models.ValidFeeStatus(*req.FeeStatus) {
			return models.Student{}, failValidation("invalid fee status")
		}
		student.FeeStatus = *req.FeeStatus
	}

	if err := s.repo.Save(ctx, &student); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (s *studentService) UpdateMarks(ctx context.Context, id uint, req dto.MarksUpdateRequest) (models.Student, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	if req.CGPA == nil {
		return models.Student{}, failValidation("cgpa must be a number")
	}
	student.CGPA = models.ClampCGPA(*req.CGPA)

	if err := s.repo.Save(ctx, &student); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findStudent(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *studentService) Leaves(ctx context.Context, id uint) ([]models.Leave, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	return student.Leaves, nil
}

// AddLeave counts the existing leaves in the target calendar month before
// inserting. The read and the write are not wrapped in a transaction, so
// two concurrent adds can both pass the count; see the design notes.
func (s *studentService) AddLeave(ctx context.Context, id uint, req dto.LeaveCreateRequest) ([]models.Leave, error) {
	if strings.TrimSpace(req.Date) == "" {
		return nil, failValidation("date is required")
	}

	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, failValidation("invalid date")
	}

	if models.CountLeavesInMonth(student.Leaves, date, "") >= studentLeaveCap {
		return nil, failValidation("monthly leave limit (%d) reached for this student", studentLeaveCap)
	}

	status := models.LeaveStatusPending
	if models.ValidLeaveStatus(req.Status) {
		status = req.Status
	}

	student.Leaves = append(student.Leaves, models.Leave{
		ID:     uuid.NewString(),
		Date:   date,
		Reason: req.Reason,
		Status: status,
	})
	if err := s.repo.Save(ctx, &student); err != nil {
		return nil, err
	}

	return student.Leaves, nil
}

func (s *studentService) UpdateLeave(ctx context.Context, id uint, leaveID string, req dto.LeaveUpdateRequest) ([]models.Leave, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	index := leaveIndex(student.Leaves, leaveID)
	if index < 0 {
		return nil, ErrLeaveNotFound
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, failValidation("invalid date")
		}
		// Moving a leave re-checks the cap against the target month, not
		// counting the entry being moved.
		if models.CountLeavesInMonth(student.Leaves, date, leaveID) >= studentLeaveCap {
			return nil, failValidation("monthly leave limit (%d) would be exceeded", studentLeaveCap)
		}
		student.Leaves[index].Date = date
	}
	if req.Reason != nil {
		student.Leaves[index].Reason = *req.Reason
	}
	if req.Status != nil && models.ValidLeaveStatus(*req.Status) {
		student.Leaves[index].Status = *req.Status
	}

	if err := s.repo.Save(ctx, &student); err != nil {
		return nil, err
	}

	return student.Leaves, nil
}

func (s *studentService) DeleteLeave(ctx context.Context, id uint, leaveID string) ([]models.Leave, error) {
	student, err := s.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	index := leaveIndex(student.Leaves, leaveID)
	if index < 0 {
		return nil, ErrLeaveNotFound
	}

	student.Leaves = append(student.Leaves[:index], student.Leaves[index+1:]...)
	if err := s.repo.Save(ctx, &student); err != nil {
		return nil, err
	}

	return student.Leaves, nil
}

func (s *studentService) findStudent(ctx context.Context, id uint) (models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}

	return student, nil
}

func leaveIndex(leaves []models.Leave, leaveID string) int {
	for i, leave := range leaves {
		if leave.ID == leaveID {
			return i
		}
	}
	return -1
}
