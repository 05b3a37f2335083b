// file: internals/middlewares/admin_session.go
package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "schoolcal_backend/internals/helpers"
)

// Sesi admin = token HS256 di cookie, bukan flag global.
// Expiry absolut 24 jam dari pembuatan sesi, tidak sliding.
const (
	AdminSessionCookie = "admin_session"
	AdminSessionTTL    = 24 * time.Hour
)

// IssueAdminSession: buat token sesi admin baru.
func IssueAdminSession(secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(AdminSessionTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// IsAdminSession: cek cookie tanpa menghasilkan error (untuk /status).
func IsAdminSession(c *fiber.Ctx, secret string) bool {
	raw := strings.TrimSpace(c.Cookies(AdminSessionCookie))
	if raw == "" {
		return false
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// AdminOnly: guard untuk semua operasi mutasi.
// Request tanpa sesi valid berhenti di sini, tidak pernah sampai ke store.
func AdminOnly(secret string) fiber.Handler {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		panic("AdminOnly: secret wajib diisi")
	}
	return func(c *fiber.Ctx) error {
		if !IsAdminSession(c, secret) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Admin access required")
		}
		return c.Next()
	}
}
