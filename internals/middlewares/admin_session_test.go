// file: internals/middlewares/admin_session_test.go
package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "session-test-secret"

func jsonDecode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusApp() *fiber.App {
	app := fiber.New()
	app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"isAdmin": IsAdminSession(c, testSecret)})
	})
	return app
}

func getWithCookie(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func isAdminFromBody(t *testing.T, resp *http.Response) bool {
	t.Helper()
	var body struct {
		IsAdmin bool `json:"isAdmin"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	return body.IsAdmin
}

func TestIssueAdminSession_Valid(t *testing.T) {
	token, err := IssueAdminSession(testSecret)
	require.NoError(t, err)

	resp := getWithCookie(t, statusApp(), token)
	assert.True(t, isAdminFromBody(t, resp))
}

func TestAdminSession_ExpiredTokenRejected(t *testing.T) {
	// sesi dengan exp lewat (window absolut 24 jam sudah habis)
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Add(-25 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp := getWithCookie(t, statusApp(), token)
	assert.False(t, isAdminFromBody(t, resp))
}

func TestAdminSession_WrongSecretRejected(t *testing.T) {
	token, err := IssueAdminSession("some-other-secret")
	require.NoError(t, err)

	resp := getWithCookie(t, statusApp(), token)
	assert.False(t, isAdminFromBody(t, resp))
}

func TestAdminSession_MissingCookie(t *testing.T) {
	resp := getWithCookie(t, statusApp(), "")
	assert.False(t, isAdminFromBody(t, resp))
}

func TestAdminOnly_Rejects(t *testing.T) {
	app := fiber.New()
	app.Post("/mut", AdminOnly(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/mut", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
