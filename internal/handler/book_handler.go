package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// BookHandler wires the library catalogue endpoints.
type BookHandler struct {
	service service.BookService
	logger  zerolog.Logger
}

// NewBookHandler constructs the handler.
func NewBookHandler(service service.BookService, logger zerolog.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		logger:  logger.With().Str("component", "book_handler").Logger(),
	}
}

// Register wires book routes; all of them are admin-only.
func (h *BookHandler) Register(router fiber.Router, adminOnly fiber.Handler) {
	router.Get("", adminOnly, h.list)
	router.Post("", adminOnly, h.create)
	router.Put("/:id", adminOnly, h.update)
	router.Delete("/:id", adminOnly, h.delete)
}

func (h *BookHandler) list(c *fiber.Ctx) error {
	books, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list books")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch books")
	}

	return utils.SendSuccess(c, "books retrieved", books)
}

func (h *BookHandler) create(c *fiber.Ctx) error {
	var payload dto.BookCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	createdBy, _ := c.Locals(middleware.LocalUserID).(uint)
	book, err := h.service.Create(c.Context(), payload, createdBy)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create book")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create book")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "book created", book)
}

func (h *BookHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.BookUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	book, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case notFound(err):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update book")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update book")
		}
	}

	return utils.SendSuccess(c, "book updated", book)
}

func (h *BookHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if notFound(err) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete book")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete book")
	}

	return utils.SendSuccess(c, "book deleted", nil)
}
