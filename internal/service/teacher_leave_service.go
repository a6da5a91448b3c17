package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/repository"
)

// Teachers may accumulate at most this many leaves per calendar month.
const teacherLeaveCap = 5

// Actor identifies the authenticated caller for self-only checks.
type Actor struct {
	ID   uint
	Role string
}

// TeacherLeaveService covers leave appeals and admin decisions on them.
// Appeals are never deletable, not even by an admin.
type TeacherLeaveService interface {
	Leaves(ctx context.Context, teacherID uint) ([]models.Leave, error)
	Appeal(ctx context.Context, teacherID uint, actor Actor, req dto.TeacherLeaveCreateRequest) ([]models.Leave, error)
	Decide(ctx context.Context, teacherID uint, leaveID string, req dto.TeacherLeaveDecisionRequest) ([]models.Leave, error)
}

type teacherLeaveService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewTeacherLeaveService constructs the teacher leave service.
func NewTeacherLeaveService(users repository.UserRepository, logger zerolog.Logger) TeacherLeaveService {
	return &teacherLeaveService{
		users:  users,
		logger: logger.With().Str("component", "teacher_leave_service").Logger(),
	}
}

func (s *teacherLeaveService) Leaves(ctx context.Context, teacherID uint) ([]models.Leave, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	return teacher.Leaves, nil
}

// Appeal files a leave for the calling teacher. Only the teacher themselves
// may appeal, and the status always starts Pending.
func (s *teacherLeaveService) Appeal(ctx context.Context, teacherID uint, actor Actor, req dto.TeacherLeaveCreateRequest) ([]models.Leave, error) {
	if strings.TrimSpace(req.Date) == "" {
		return nil, failValidation("date is required")
	}
	if actor.Role != models.RoleTeacher || actor.ID != teacherID {
		return nil, ErrOwnLeaveOnly
	}

	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, failValidation("invalid date")
	}

	if models.CountLeavesInMonth(teacher.Leaves, date, "") >= teacherLeaveCap {
		return nil, failValidation("monthly leave limit (%d) reached for this teacher", teacherLeaveCap)
	}

	teacher.Leaves = append(teacher.Leaves, models.Leave{
		ID:     uuid.NewString(),
		Date:   date,
		Reason: req.Reason,
		Status: models.LeaveStatusPending,
	})
	if err := s.users.Save(ctx, &teacher); err != nil {
		return nil, err
	}

	return teacher.Leaves, nil
}

// Decide lets an admin change the status of an appeal. Date and reason are
// immutable once filed; an unknown status value is ignored.
func (s *teacherLeaveService) Decide(ctx context.Context, teacherID uint, leaveID string, req dto.TeacherLeaveDecisionRequest) ([]models.Leave, error) {
	teacher, err := findTeacher(ctx, s.users, teacherID)
	if err != nil {
		return nil, err
	}

	index := leaveIndex(teacher.Leaves, leaveID)
	if index < 0 {
		return nil, ErrLeaveNotFound
	}

	if req.Status != nil && models.ValidLeaveStatus(*req.Status) {
		teacher.Leaves[index].Status = *req.Status
	}

	if err := s.users.Save(ctx, &teacher); err != nil {
		return nil, err
	}

	return teacher.Leaves, nil
}

// findTeacher resolves an id to a user with the teacher role. Anything else
// is a not-found, including admins addressed through teacher routes.
func findTeacher(ctx context.Context, users repository.UserRepository, id uint) (models.User, error) {
	teacher, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrTeacherNotFound
		}
		return models.User{}, err
	}
	if !teacher.IsTeacher() {
		return models.User{}, ErrTeacherNotFound
	}

	return teacher, nil
}
