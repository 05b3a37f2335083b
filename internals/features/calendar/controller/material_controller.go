// file: internals/features/calendar/controller/material_controller.go
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

type MaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaterial(db *gorm.DB, v *validator.Validate) *MaterialController {
	return &MaterialController{DB: db, Validate: v}
}

/* =========================
   List (PUBLIC)
   ========================= */

// List: materi satu tanggal, dikelompokkan per grade,
// urutan per grade = urutan pembuatan.
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	date, ok := d.ParseDateKey(c.Query("dateKey"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid dateKey (YYYY-MM-DD)")
	}

	rows, err := repo.MaterialsByDate(ctl.DB.WithContext(c.UserContext()), date)
	if err != nil {
		return writeStorageError(c, "Material.List", err)
	}
	return helper.JsonOK(c, d.GroupMaterialsByGrade(rows))
}

/* =========================
   Create (ADMIN)
   ========================= */

func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	var req d.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	mat := req.ToModel()
	if err := repo.CreateMaterial(ctl.DB.WithContext(c.UserContext()), &mat); err != nil {
		return writeStorageError(c, "Material.Create", err)
	}
	return helper.JsonCreated(c, d.FromModelMaterial(mat))
}

/* =========================
   Delete (ADMIN)
   ========================= */

// Delete: idempotent — id yang tidak ada tetap sukses.
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid material id")
	}
	if err := repo.DeleteMaterialByID(ctl.DB.WithContext(c.UserContext()), id); err != nil {
		return writeStorageError(c, "Material.Delete", err)
	}
	return helper.JsonSuccess(c)
}
