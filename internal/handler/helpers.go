package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/service"
)

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func actorFromContext(c *fiber.Ctx) service.Actor {
	actor := service.Actor{}
	if id, ok := c.Locals(middleware.LocalUserID).(uint); ok {
		actor.ID = id
	}
	if role, ok := c.Locals(middleware.LocalUserRole).(string); ok {
		actor.Role = role
	}
	return actor
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return true
	}
	return service.IsValidationError(err)
}

// notFound reports whether err is one of the identifier-miss sentinels.
func notFound(err error) bool {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrLeaveNotFound),
		errors.Is(err, service.ErrSalaryRecordNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrInfrastructureNotFound),
		errors.Is(err, service.ErrNoticeNotFound):
		return true
	}
	return false
}
