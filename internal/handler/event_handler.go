package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// EventHandler wires the event spend ledger endpoints. No update or delete
// route exists: the ledger is append-only.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs the handler.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register wires event routes; both are admin-only.
func (h *EventHandler) Register(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("", adminOnly, h.list)
	router.Post("", adminOnly, h.create)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list events")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	createdBy, _ := c.Locals(middleware.LocalUserID).(uint)
	event, err := h.service.Create(c.Context(), payload, createdBy)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create event")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create event")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}
