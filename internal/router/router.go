package router

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/config"
	"github.com/campuscare/campuscare-api/internal/handler"
	"github.com/campuscare/campuscare-api/internal/middleware"
	"github.com/campuscare/campuscare-api/internal/models"
	"github.com/campuscare/campuscare-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler           *handler.AuthHandler
	StudentHandler        *handler.StudentHandler
	TeacherHandler        *handler.TeacherHandler
	BookHandler           *handler.BookHandler
	EventHandler          *handler.EventHandler
	InfrastructureHandler *handler.InfrastructureHandler
	NoticeHandler         *handler.NoticeHandler
	JWTMiddleware         fiber.Handler
	DB                    *gorm.DB
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.DB))

	jwt := deps.JWTMiddleware
	if jwt == nil {
		jwt = func(c *fiber.Ctx) error { return c.Next() }
	}

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	teacherOnly := middleware.RequireRole(models.RoleTeacher)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleTeacher)

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"), jwt, staffOnly)
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwt), adminOnly, staffOnly)
	}
	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(api.Group("/teachers", jwt), adminOnly, teacherOnly, staffOnly)
	}
	if deps.BookHandler != nil {
		deps.BookHandler.Register(api.Group("/books", jwt), adminOnly)
	}
	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events", jwt), adminOnly)
	}
	if deps.InfrastructureHandler != nil {
		deps.InfrastructureHandler.Register(api.Group("/infrastructure", jwt), adminOnly)
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(api.Group("/notices", jwt), adminOnly, staffOnly)
	}
}
