package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// StudentHandler wires student management endpoints, including the embedded
// leave sub-resource.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register wires student routes. The group is already JWT-protected; role
// checks are applied per route since the allow-sets differ.
func (h *StudentHandler) Register(router fiber.Router, adminOnly fiber.Handler, staffOnly fiber.Handler) {
	router.Get("", staffOnly, h.list)
	router.Post("", adminOnly, h.create)
	router.Put("/:id/marks", staffOnly, h.updateMarks)
	router.Put("/:id", adminOnly, h.update)
	router.Delete("/:id", adminOnly, h.delete)

	router.Get("/:id/leaves", adminOnly, h.leaves)
	router.Post("/:id/leaves", adminOnly, h.addLeave)
	router.Put("/:id/leaves/:leaveId", adminOnly, h.updateLeave)
	router.Delete("/:id/leaves/:leaveId", adminOnly, h.deleteLeave)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create student")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student created", student)
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.StudentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update student")
	}

	return utils.SendSuccess(c, "student updated", student)
}

func (h *StudentHandler) updateMarks(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.MarksUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.UpdateMarks(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update marks")
	}

	return utils.SendSuccess(c, "marks updated", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete student")
	}

	return utils.SendSuccess(c, "student deleted", nil)
}

func (h *StudentHandler) leaves(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	leaves, err := h.service.Leaves(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to list leaves")
	}

	return utils.SendSuccess(c, "leaves retrieved", leaves)
}

func (h *StudentHandler) addLeave(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.LeaveCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	leaves, err := h.service.AddLeave(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to add leave")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "leave added", leaves)
}

func (h *StudentHandler) updateLeave(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.LeaveUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	leaves, err := h.service.UpdateLeave(c.Context(), id, c.Params("leaveId"), payload)
	if err != nil {
		return h.fail(c, err, "failed to update leave")
	}

	return utils.SendSuccess(c, "leave updated", leaves)
}

func (h *StudentHandler) deleteLeave(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	leaves, err := h.service.DeleteLeave(c.Context(), id, c.Params("leaveId"))
	if err != nil {
		return h.fail(c, err, "failed to delete leave")
	}

	return utils.SendSuccess(c, "leave deleted", leaves)
}

func (h *StudentHandler) fail(c *fiber.Ctx, err error, logMessage string) error {
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
