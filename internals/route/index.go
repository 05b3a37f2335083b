// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolcal_backend/internals/configs"
	calCtl "schoolcal_backend/internals/features/calendar/controller"
	calRoutes "schoolcal_backend/internals/features/calendar/route"
	"schoolcal_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()
	api := app.Group("/api")

	// ===================== ADMIN SESSION =====================
	log.Println("[INFO] Setting up admin auth routes...")
	calRoutes.AdminAuthRoutes(api, middlewares.LoginRateLimiter())

	adminGuard := middlewares.AdminOnly(configs.JWTSecret)

	// ===================== CALENDAR =====================
	log.Println("[INFO] Setting up calendar routes...")
	calRoutes.CalendarRoutes(api, db, v, adminGuard)

	// ===================== HEALTH =====================
	hc := calCtl.NewHealth()
	api.Get("/health", hc.Check)
}
