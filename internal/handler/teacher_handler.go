package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// TeacherHandler wires the teacher leave and salary endpoints.
type TeacherHandler struct {
	leaves   service.TeacherLeaveService
	salaries service.TeacherSalaryService
	logger   zerolog.Logger
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(leaves service.TeacherLeaveService, salaries service.TeacherSalaryService, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		leaves:   leaves,
		salaries: salaries,
		logger:   logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register wires teacher routes. Appeals are filed by teachers about
// themselves and decided by admins; there is deliberately no leave delete.
func (h *TeacherHandler) Register(router fiber.Router, adminOnly fiber.Handler, teacherOnly fiber.Handler, staffOnly fiber.Handler) {
	router.Get("/:id/leaves", staffOnly, h.listLeaves)
	router.Post("/:id/leaves", teacherOnly, h.appealLeave)
	router.Put("/:id/leaves/:leaveId", adminOnly, h.decideLeave)

	router.Get("/:id/salary", staffOnly, h.salary)
	router.Put("/:id/salary", adminOnly, h.updateSalary)

	router.Get("/:id/salary-records", staffOnly, h.listSalaryRecords)
	router.Post("/:id/salary-records", adminOnly, h.addSalaryRecord)
	router.Put("/:id/salary-records/:recordId", adminOnly, h.updateSalaryRecord)
	router.Delete("/:id/salary-records/:recordId", adminOnly, h.deleteSalaryRecord)
}

func (h *TeacherHandler) listLeaves(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	leaves, err := h.leaves.Leaves(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to list teacher leaves")
	}

	return utils.SendSuccess(c, "leaves retrieved", leaves)
}

func (h *TeacherHandler) appealLeave(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.TeacherLeaveCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	leaves, err := h.leaves.Appeal(c.Context(), id, actorFromContext(c), payload)
	if err != nil {
		if errors.Is(err, service.ErrOwnLeaveOnly) {
			return utils.SendError(c, fiber.StatusForbidden, err.Error())
		}
		return h.fail(c, err, "failed to appeal leave")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "leave appealed", leaves)
}

func (h *TeacherHandler) decideLeave(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.TeacherLeaveDecisionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	leaves, err := h.leaves.Decide(c.Context(), id, c.Params("leaveId"), payload)
	if err != nil {
		return h.fail(c, err, "failed to decide leave")
	}

	return utils.SendSuccess(c, "leave updated", leaves)
}

func (h *TeacherHandler) salary(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	salary, err := h.salaries.Salary(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to fetch salary")
	}

	return utils.SendSuccess(c, "salary retrieved", salary)
}

func (h *TeacherHandler) updateSalary(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.SalaryUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	salary, err := h.salaries.UpdateSalary(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update salary")
	}

	return utils.SendSuccess(c, "salary updated", salary)
}

func (h *TeacherHandler) listSalaryRecords(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	records, err := h.salaries.Records(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to list salary records")
	}

	return utils.SendSuccess(c, "salary records retrieved", records)
}

func (h *TeacherHandler) addSalaryRecord(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.SalaryRecordCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	records, err := h.salaries.AddRecord(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to add salary record")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "salary record saved", records)
}

func (h *TeacherHandler) updateSalaryRecord(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.SalaryRecordUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	records, err := h.salaries.UpdateRecord(c.Context(), id, c.Params("recordId"), payload)
	if err != nil {
		return h.fail(c, err, "failed to update salary record")
	}

	return utils.SendSuccess(c, "salary record updated", records)
}

func (h *TeacherHandler) deleteSalaryRecord(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	records, err := h.salaries.DeleteRecord(c.Context(), id, c.Params("recordId"))
	if err != nil {
		return h.fail(c, err, "failed to delete salary record")
	}

	return utils.SendSuccess(c, "salary record deleted", records)
}

func (h *TeacherHandler) fail(c *fiber.Ctx, err error, logMessage string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case notFound(err):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(logMessage)
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}
}
