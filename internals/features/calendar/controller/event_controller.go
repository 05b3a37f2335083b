// file: internals/features/calendar/controller/event_controller.go
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

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEvent(db *gorm.DB, v *validator.Validate) *EventController {
	return &EventController{DB: db, Validate: v}
}

/* =========================
   List (PUBLIC)
   ========================= */

// List: range inklusif startDate..endDate, filter department opsional
// ("See All" = tanpa filter), hasil dikelompokkan per tanggal, jam ascending.
func (ctl *EventController) List(c *fiber.Ctx) error {
	var q d.ListEventsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, ok := d.ParseDateKey(q.StartDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid startDate (YYYY-MM-DD)")
	}
	end, ok := d.ParseDateKey(q.EndDate)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid endDate (YYYY-MM-DD)")
	}

	department, _ := q.DepartmentFilter()
	rows, err := repo.EventsInRange(ctl.DB.WithContext(c.UserContext()), start, end, department)
	if err != nil {
		return writeStorageError(c, "Event.List", err)
	}
	return helper.JsonOK(c, d.GroupEvents(rows))
}

/* =========================
   Create (PUBLIC — lihat route)
   ========================= */

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req d.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ev := req.ToModel()
	if err := repo.CreateEvent(ctl.DB.WithContext(c.UserContext()), &ev); err != nil {
		return writeStorageError(c, "Event.Create", err)
	}
	return helper.JsonCreated(c, d.FromModelEvent(ev))
}

/* =========================
   Delete (ADMIN)
   ========================= */

// Delete: idempotent — id yang tidak ada tetap sukses.
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}
	if err := repo.DeleteEventByID(ctl.DB.WithContext(c.UserContext()), id); err != nil {
		return writeStorageError(c, "Event.Delete", err)
	}
	return helper.JsonSuccess(c)
}
