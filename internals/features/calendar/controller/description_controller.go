// file: internals/features/calendar/controller/description_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolcal_backend/internals/features/calendar/dto"
	repo "schoolcal_backend/internals/features/calendar/repository"
	helper "schoolcal_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DescriptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDescription(db *gorm.DB, v *validator.Validate) *DescriptionController {
	return &DescriptionController{DB: db, Validate: v}
}

/* =========================
   List (PUBLIC)
   ========================= */

func (ctl *DescriptionController) List(c *fiber.Ctx) error {
	rows, err := repo.AllDescriptions(ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		return writeStorageError(c, "Description.List", err)
	}
	return helper.JsonOK(c, d.GroupDescriptions(rows))
}

/* =========================
   Upsert (ADMIN)
   ========================= */

// Upsert: update eksplisit selalu mengganti teks tersimpan
// (termasuk teks kosong/null) — beda dengan coalesce di DayConfig.
func (ctl *DescriptionController) Upsert(c *fiber.Ctx) error {
	var req d.UpsertDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	date, _ := d.ParseDateKey(req.DateKey)

	if err := repo.UpsertDescription(ctl.DB.WithContext(c.UserContext()), date, req.Description); err != nil {
		return writeStorageError(c, "Description.Upsert", err)
	}
	return helper.JsonSuccess(c)
}
