package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// InfrastructureHandler wires infrastructure spend endpoints.
type InfrastructureHandler struct {
	service service.InfrastructureService
	logger  zerolog.Logger
}

// NewInfrastructureHandler constructs the handler.
func NewInfrastructureHandler(service service.InfrastructureService, logger zerolog.Logger) *InfrastructureHandler {
	return &InfrastructureHandler{
		service: service,
		logger:  logger.With().Str("component", "infrastructure_handler").Logger(),
	}
}

// Register wires infrastructure routes; all of them are admin-only.
func (h *InfrastructureHandler) Register(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("", adminOnly, h.list)
	router.Post("", adminOnly, h.create)
	router.Put("/:id", adminOnly, h.update)
	router.Delete("/:id", adminOnly, h.delete)
}

func (h *InfrastructureHandler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list infrastructure")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch infrastructure")
	}

	return utils.SendSuccess(c, "infrastructure retrieved", items)
}

func (h *InfrastructureHandler) create(c *fiber.Ctx) error {
	var payload dto.InfrastructureCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	createdBy, _ := c.Locals(middleware.LocalUserID).(uint)
	item, err := h.service.Create(c.Context(), payload, createdBy)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create infrastructure")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create infrastructure")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "infrastructure created", item)
}

func (h *InfrastructureHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.InfrastructureUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case notFound(err):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update infrastructure")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update infrastructure")
		}
	}

	return utils.SendSuccess(c, "infrastructure updated", item)
}

func (h *InfrastructureHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if notFound(err) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete infrastructure")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete infrastructure")
	}

	return utils.SendSuccess(c, "infrastructure deleted", nil)
}
