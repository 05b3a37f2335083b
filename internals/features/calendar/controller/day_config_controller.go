// file: internals/features/calendar/controller/day_config_controller.go
package controller

import (
	"errors"

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

type DayConfigController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDayConfig(db *gorm.DB, v *validator.Validate) *DayConfigController {
	return &DayConfigController{DB: db, Validate: v}
}

/* =========================
   List (PUBLIC)
   ========================= */

// List: full scan → sparse map tanggal → config.
func (ctl *DayConfigController) List(c *fiber.Ctx) error {
	rows, err := repo.AllDayConfigs(ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		return writeStorageError(c, "DayConfig.List", err)
	}
	return helper.JsonOK(c, d.GroupDayConfigs(rows))
}

/* =========================
   Upsert (ADMIN)
   ========================= */

// Upsert: coalesce-on-write. Field yang dikirim mengganti nilai tersimpan,
// field yang absen dipertahankan; row dibuat lazy dengan default kalau
// belum ada. Penulisan hasil merge atomik lewat ON CONFLICT.
func (ctl *DayConfigController) Upsert(c *fiber.Ctx) error {
	var req d.UpsertDayConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	date, _ := d.ParseDateKey(req.DateKey)

	tx := ctl.DB.WithContext(c.UserContext())
	existing, err := repo.FindDayConfigByDate(tx, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return writeStorageError(c, "DayConfig.Upsert(find)", err)
	}

	merged := d.ApplyDayConfigPatch(existing, date, req.Config)

	if err := repo.UpsertDayConfig(tx, &merged); err != nil {
		return writeStorageError(c, "DayConfig.Upsert(write)", err)
	}
	return helper.JsonSuccess(c)
}
