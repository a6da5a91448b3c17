package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campuscare/campuscare-api/internal/config"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

// HealthCheck reports service liveness and database reachability. A broken
// database connection degrades the status but still answers 200, so load
// balancers keep routing while operators investigate.
func HealthCheck(cfg config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Database:    "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
		}

		if db == nil {
			payload.Database = "not configured"
		} else if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
			payload.Status = "degraded"
			payload.Database = "unreachable"
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
