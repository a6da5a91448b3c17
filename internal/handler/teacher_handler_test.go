package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/handler"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/service"
)

type mockTeacherLeaveService struct {
	lastActor service.Actor
	leaves    []models.Leave
	err       error
}

func (m *mockTeacherLeaveService) Leaves(_ context.Context, _ uint) ([]models.Leave, error) {
	return m.leaves, m.err
}

func (m *mockTeacherLeaveService) Appeal(_ context.Context, _ uint, actor service.Actor, _ dto.TeacherLeaveCreateRequest) ([]models.Leave, error) {
	m.lastActor = actor
	if m.err != nil {
		return nil, m.err
	}
	return m.leaves, nil
}

func (m *mockTeacherLeaveService) Decide(_ context.Context, _ uint, _ string, _ dto.TeacherLeaveDecisionRequest) ([]models.Leave, error) {
	return m.leaves, m.err
}

type mockTeacherSalaryService struct {
	salary  dto.SalaryResponse
	records []models.SalaryRecord
	err     error
}

func (m *mockTeacherSalaryService) Salary(_ context.Context, _ uint) (dto.SalaryResponse, error) {
	return m.salary, m.err
}

func (m *mockTeacherSalaryService) UpdateSalary(_ context.Context, _ uint, _ dto.SalaryUpdateRequest) (dto.SalaryResponse, error) {
	return m.salary, m.err
}

func (m *mockTeacherSalaryService) Records(_ context.Context, _ uint) ([]models.SalaryRecord, error) {
	return m.records, m.err
}

func (m *mockTeacherSalaryService) AddRecord(_ context.Context, _ uint, _ dto.SalaryRecordCreateRequest) ([]models.SalaryRecord, error) {
	return m.records, m.err
}

func (m *mockTeacherSalaryService) UpdateRecord(_ context.Context, _ uint, _ string, _ dto.SalaryRecordUpdateRequest) ([]models.SalaryRecord, error) {
	return m.records, m.err
}

func (m *mockTeacherSalaryService) DeleteRecord(_ context.Context, _ uint, _ string) ([]models.SalaryRecord, error) {
	return m.records, m.err
}

func newTeacherApp(leaves *mockTeacherLeaveService, salaries *mockTeacherSalaryService, actor service.Actor) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, actor.ID)
		c.Locals(middleware.LocalUserRole, actor.Role)
		return c.Next()
	})
	h := handler.NewTeacherHandler(leaves, salaries, zerolog.New(io.Discard))
	h.Register(app.Group("/api/teachers"), passthrough, passthrough, passthrough)
	return app
}

func TestTeacherHandlerAppealForwardsActor(t *testing.T) {
	leaves := &mockTeacherLeaveService{leaves: []models.Leave{{ID: "leave-1", Status: models.LeaveStatusPending}}}
	actor := service.Actor{ID: 5, Role: models.RoleTeacher}
	app := newTeacherApp(leaves, &mockTeacherSalaryService{}, actor)

	req := jsonRequest(t, http.MethodPost, "/api/teachers/5/leaves", dto.TeacherLeaveCreateRequest{
		Date:   "2026-03-05",
		Reason: "conference",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, actor, leaves.lastActor)
}

func TestTeacherHandlerAppealForbiddenForOtherTeacher(t *testing.T) {
	leaves := &mockTeacherLeaveService{err: service.ErrOwnLeaveOnly}
	app := newTeacherApp(leaves, &mockTeacherSalaryService{}, service.Actor{ID: 9, Role: models.RoleTeacher})

	req := jsonRequest(t, http.MethodPost, "/api/teachers/5/leaves", dto.TeacherLeaveCreateRequest{Date: "2026-03-05"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTeacherHandlerUnknownTeacherIs404(t *testing.T) {
	salaries := &mockTeacherSalaryService{err: service.ErrTeacherNotFound}
	app := newTeacherApp(&mockTeacherLeaveService{}, salaries, service.Actor{ID: 1, Role: models.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/teachers/99/salary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTeacherHandlerInvalidIdentifier(t *testing.T) {
	app := newTeacherApp(&mockTeacherLeaveService{}, &mockTeacherSalaryService{}, service.Actor{ID: 1, Role: models.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/teachers/not-a-number/salary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTeacherHandlerSalaryResponseShape(t *testing.T) {
	salaries := &mockTeacherSalaryService{salary: dto.SalaryResponse{TotalSalary: 50000, PaidSalary: 20000, Remaining: 30000}}
	app := newTeacherApp(&mockTeacherLeaveService{}, salaries, service.Actor{ID: 1, Role: models.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/teachers/5/salary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool               `json:"success"`
		Data    dto.SalaryResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, 30000.0, body.Data.Remaining)
}

func TestTeacherHandlerValidationErrorIs400(t *testing.T) {
	salaries := &mockTeacherSalaryService{err: service.ValidationError{Message: "invalid status"}}
	app := newTeacherApp(&mockTeacherLeaveService{}, salaries, service.Actor{ID: 1, Role: models.RoleAdmin})

	req := jsonRequest(t, http.MethodPost, "/api/teachers/5/salary-records", dto.SalaryRecordCreateRequest{Month: "2026-03"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
