package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// NoticeHandler wires notice endpoints. Mutating calls answer with the full
// refreshed, sorted list rather than the affected item.
type NoticeHandler struct {
	service service.NoticeService
	logger  zerolog.Logger
}

// NewNoticeHandler constructs the handler.
func NewNoticeHandler(service service.NoticeService, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		service: service,
		logger:  logger.With().Str("component", "notice_handler").Logger(),
	}
}

// Register wires notice routes: reads for staff, writes for admins.
func (h *NoticeHandler) Register(router fiber.Router, adminOnly fiber.Handler, staffOnly fiber.Handler) {
	router.Get("", staffOnly, h.list)
	router.Post("", adminOnly, h.create)
	router.Put("/:id", adminOnly, h.update)
	router.Delete("/:id", adminOnly, h.delete)
}

func (h *NoticeHandler) list(c *fiber.Ctx) error {
	notices, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list notices")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccess(c, "notices retrieved", notices)
}

func (h *NoticeHandler) create(c *fiber.Ctx) error {
	var payload dto.NoticeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	createdBy, _ := c.Locals(middleware.LocalUserID).(uint)
	notices, err := h.service.Create(c.Context(), payload, createdBy)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create notice")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "notice created", notices)
}

func (h *NoticeHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.NoticeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	notices, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case notFound(err):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update notice")
			return utils.SendError(c, fiber.StatusInternalServerError, "server error")
		}
	}

	return utils.SendSuccess(c, "notice updated", notices)
}

func (h *NoticeHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	notices, err := h.service.Delete(c.Context(), id)
	if err != nil {
		if notFound(err) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete notice")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccess(c, "notice deleted", notices)
}
