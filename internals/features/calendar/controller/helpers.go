// file: internals/features/calendar/controller/helpers.go
package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "schoolcal_backend/internals/helpers"
)

/* =========================
   Small helpers
   ========================= */

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	idStr := strings.TrimSpace(c.Params(name))
	return strconv.ParseInt(idStr, 10, 64)
}

// writeStorageError: 500 seragam; detail hanya ke log server, tidak ke client.
func writeStorageError(c *fiber.Ctx, op string, err error) error {
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "database error")
}
