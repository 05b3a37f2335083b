// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helper (standard shape)
=================================*/

// JsonError: semua error keluar dengan bentuk seragam {"error": <message>}.
// 400 = field wajib hilang, 401 = butuh admin, 500 = storage/backend.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ErrorHandler: fallback app-level. Error yang lolos sampai Fiber
// (404 route, panic dari recover, *fiber.Error) tetap keluar seragam.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	return JsonError(c, code, err.Error())
}

/* ===============================
   Success helpers
=================================*/

// JsonOK: 200 dengan body apa adanya (mapping sparse, object, dsb).
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: 201 dengan object yang baru dibuat.
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonSuccess: 200 {"success": true} untuk mutasi tanpa body balikan.
func JsonSuccess(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
