// file: internals/features/calendar/route/calendar_routes.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calCtl "schoolcal_backend/internals/features/calendar/controller"
)

// CalendarRoutes: semua endpoint kalender di bawah /api.
// Read PUBLIC, mutasi lewat adminGuard — kecuali POST /events yang memang
// tidak digate di perilaku yang diamati (dipertahankan apa adanya,
// jangan "dibetulkan" diam-diam).
func CalendarRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, adminGuard fiber.Handler) {
	// Day configs
	dc := calCtl.NewDayConfig(db, v)
	api.Get("/date-configs", dc.List)
	api.Post("/date-configs", adminGuard, dc.Upsert)

	// Events
	ev := calCtl.NewEvent(db, v)
	api.Get("/events", ev.List)
	api.Post("/events", ev.Create) // sengaja tanpa adminGuard
	api.Delete("/events/:id", adminGuard, ev.Delete)

	// Materials
	mt := calCtl.NewMaterial(db, v)
	api.Get("/materials", mt.List)
	api.Post("/materials", adminGuard, mt.Create)
	api.Delete("/materials/:id", adminGuard, mt.Delete)

	// Descriptions
	ds := calCtl.NewDescription(db, v)
	api.Get("/descriptions", ds.List)
	api.Post("/descriptions", adminGuard, ds.Upsert)
}

// AdminAuthRoutes: login/logout/status untuk sesi admin.
func AdminAuthRoutes(api fiber.Router, loginLimiter fiber.Handler) {
	ac := calCtl.NewAdminAuth()
	admin := api.Group("/admin")
	admin.Post("/login", loginLimiter, ac.Login)
	admin.Post("/logout", ac.Logout)
	admin.Get("/status", ac.Status)
}
