package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/dto"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/observability"
	"github.com/campuscare/campuscare-api/internal/service"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// AuthHandler wires registration, login and the bootstrap probe.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires auth routes. The register/login/admin-exists routes stay
// open: the bootstrap policy inside the service decides whether a token is
// required. The teacher listing requires an authenticated staff caller.
func (h *AuthHandler) Register(router fiber.Router, protected fiber.Handler, staffOnly fiber.Handler) {
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Get("/admin-exists", h.adminExists)
	router.Get("/teachers", protected, staffOnly, h.listTeachers)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	bearer := middleware.BearerToken(c.Get("Authorization"))

	response, err := h.service.Register(c.Context(), payload, bearer)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAuthRequired), errors.Is(err, service.ErrTokenInvalid):
			return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrAdminOnly):
			return utils.SendError(c, fiber.StatusForbidden, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to register user")
			return utils.SendError(c, fiber.StatusInternalServerError, "server error")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "user registered", response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Login(c.Context(), payload, c.IP())
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			observability.LoginFailures().WithLabelValues("credentials").Inc()
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, service.ErrTooManyLoginAttempts):
			observability.LoginFailures().WithLabelValues("throttled").Inc()
			return utils.SendError(c, fiber.StatusTooManyRequests, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to log in user")
			return utils.SendError(c, fiber.StatusInternalServerError, "server error")
		}
	}

	return utils.SendSuccess(c, "logged in", response)
}

func (h *AuthHandler) adminExists(c *fiber.Ctx) error {
	exists, err := h.service.AdminExists(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to probe admin existence")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccess(c, "admin existence checked", dto.AdminExistsResponse{Exists: exists})
}

func (h *AuthHandler) listTeachers(c *fiber.Ctx) error {
	teachers, err := h.service.ListTeachers(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list teachers")
		return utils.SendError(c, fiber.StatusInternalServerError, "server error")
	}

	return utils.SendSuccess(c, "teachers retrieved", teachers)
}
