// file: internals/features/calendar/controller/admin_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"schoolcal_backend/internals/configs"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/middlewares"
)

/* =========================
   Controller & Constructor
   ========================= */

type AdminAuthController struct{}

func NewAdminAuth() *AdminAuthController {
	return &AdminAuthController{}
}

/* =========================
   Login / Logout / Status
   ========================= */

// Login: satu shared secret → sesi Admin 24 jam (absolut, tidak sliding).
// Secret dibandingkan via bcrypt, tidak pernah plaintext-compare.
func (ctl *AdminAuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.Password) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "password is required")
	}

	if configs.AdminPasswordHash == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "admin credential not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid password")
	}

	token, err := middlewares.IssueAdminSession(configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminSessionCookie,
		Value:    token,
		Expires:  time.Now().Add(middlewares.AdminSessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonSuccess(c)
}

// Logout: Admin → Guest, hapus cookie sesi.
func (ctl *AdminAuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminSessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonSuccess(c)
}

// Status: cek sesi tanpa error (read, tanpa authorization).
func (ctl *AdminAuthController) Status(c *fiber.Ctx) error {
	return helper.JsonOK(c, fiber.Map{
		"isAdmin": middlewares.IsAdminSession(c, configs.JWTSecret),
	})
}
