// file: internals/features/calendar/controller/health_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	helper "schoolcal_backend/internals/helpers"
)

type HealthController struct{}

func NewHealth() *HealthController {
	return &HealthController{}
}

func (ctl *HealthController) Check(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := database.Ping(); err != nil {
		dbStatus = "disconnected"
	}
	return helper.JsonOK(c, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
	})
}
