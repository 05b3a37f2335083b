// file: internals/features/calendar/controller/calendar_flow_test.go
package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolcal_backend/internals/configs"
	"schoolcal_backend/internals/middlewares"
)

// DDL portabel untuk store test in-memory (kolom sama dengan skema Postgres).
var calendarDDL = []string{
	`CREATE TABLE day_configs (
		day_config_date DATE PRIMARY KEY,
		day_config_color TEXT,
		day_config_day_type TEXT,
		day_config_is_access INTEGER NOT NULL DEFAULT 0,
		day_config_created_at DATETIME,
		day_config_updated_at DATETIME
	)`,
	`CREATE TABLE events (
		event_id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_date DATE NOT NULL,
		event_title TEXT NOT NULL,
		event_time TEXT NOT NULL,
		event_department TEXT NOT NULL,
		event_description TEXT,
		event_created_at DATETIME
	)`,
	`CREATE TABLE materials (
		material_id INTEGER PRIMARY KEY AUTOINCREMENT,
		material_date DATE NOT NULL,
		material_grade TEXT NOT NULL,
		material_title TEXT NOT NULL,
		material_link TEXT NOT NULL,
		material_type TEXT NOT NULL DEFAULT 'lesson',
		material_created_at DATETIME
	)`,
	`CREATE TABLE day_descriptions (
		description_date DATE PRIMARY KEY,
		description_text TEXT,
		description_created_at DATETIME,
		description_updated_at DATETIME
	)`,
}

// newCalendarTestApp: app lengkap (auth + kalender) di atas store sqlite
// in-memory, route sama persis dengan registrasi produksi.
func newCalendarTestApp(t *testing.T, mw ...fiber.Handler) *fiber.App {
	t.Helper()

	configs.JWTSecret = "test-secret"
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	configs.AdminPasswordHash = string(hash)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	for _, ddl := range calendarDDL {
		require.NoError(t, db.Exec(ddl).Error)
	}

	v := validator.New()
	app := fiber.New()
	for _, m := range mw {
		app.Use(m)
	}
	api := app.Group("/api")

	ac := NewAdminAuth()
	admin := api.Group("/admin")
	admin.Post("/login", ac.Login)
	admin.Post("/logout", ac.Logout)
	admin.Get("/status", ac.Status)

	guard := middlewares.AdminOnly(configs.JWTSecret)

	dc := NewDayConfig(db, v)
	api.Get("/date-configs", dc.List)
	api.Post("/date-configs", guard, dc.Upsert)

	ev := NewEvent(db, v)
	api.Get("/events", ev.List)
	api.Post("/events", ev.Create)
	api.Delete("/events/:id", guard, ev.Delete)

	mt := NewMaterial(db, v)
	api.Get("/materials", mt.List)
	api.Post("/materials", guard, mt.Create)
	api.Delete("/materials/:id", guard, mt.Delete)

	ds := NewDescription(db, v)
	api.Get("/descriptions", ds.List)
	api.Post("/descriptions", guard, ds.Upsert)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, ck *http.Cookie) *http.Response {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if ck != nil {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestScenario_LoginCreateEventThenFetchGrouped(t *testing.T) {
	app := newCalendarTestApp(t)

	ck := sessionCookie(t, doLogin(t, app, testPassword))
	require.NotNil(t, ck)

	resp := doJSON(t, app, http.MethodPost, "/api/events",
		`{"dateKey":"2024-03-01","title":"Spring Concert","time":"18:30","department":"Music"}`, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, ok := created["id"].(float64)
	require.True(t, ok, "created event harus punya id numerik")
	require.Greater(t, id, float64(0))

	resp = doJSON(t, app, http.MethodGet, "/api/events?startDate=2024-03-01&endDate=2024-03-01", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	grouped := decodeBody(t, resp)

	require.Contains(t, grouped, "2024-03-01")
	evs, ok := grouped["2024-03-01"].([]any)
	require.True(t, ok)
	require.Len(t, evs, 1)

	ev := evs[0].(map[string]any)
	assert.Equal(t, "Spring Concert", ev["title"])
	assert.Equal(t, "18:30", ev["time"])
	assert.Equal(t, "Music", ev["department"])
	assert.Nil(t, ev["description"])
	assert.Equal(t, id, ev["id"])
}

func TestScenario_SeeAllDepartmentEqualsNoFilter(t *testing.T) {
	app := newCalendarTestApp(t)
	ck := sessionCookie(t, doLogin(t, app, testPassword))
	require.NotNil(t, ck)

	for _, body := range []string{
		`{"dateKey":"2024-03-01","title":"Concert","time":"18:30","department":"Music"}`,
		`{"dateKey":"2024-03-01","title":"Match","time":"15:00","department":"Athletics"}`,
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/events", body, ck)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	plain := decodeBody(t, doJSON(t, app, http.MethodGet,
		"/api/events?startDate=2024-03-01&endDate=2024-03-01", "", nil))
	seeAll := decodeBody(t, doJSON(t, app, http.MethodGet,
		"/api/events?startDate=2024-03-01&endDate=2024-03-01&department=See+All", "", nil))

	assert.Equal(t, plain, seeAll, `department "See All" harus identik dengan tanpa filter`)
	assert.Len(t, seeAll["2024-03-01"].([]any), 2)
}

func TestScenario_MaterialRoundTripThroughAPI(t *testing.T) {
	app := newCalendarTestApp(t)
	ck := sessionCookie(t, doLogin(t, app, testPassword))
	require.NotNil(t, ck)

	resp := doJSON(t, app, http.MethodPost, "/api/materials",
		`{"dateKey":"2024-04-10","grade":"7","title":"Fractions worksheet","link":"https://example.org/fractions.pdf"}`, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	grouped := decodeBody(t, doJSON(t, app, http.MethodGet, "/api/materials?dateKey=2024-04-10", "", nil))
	require.Contains(t, grouped, "7")
	mats := grouped["7"].([]any)
	require.Len(t, mats, 1)

	mat := mats[0].(map[string]any)
	assert.Equal(t, "Fractions worksheet", mat["title"])
	assert.Equal(t, "https://example.org/fractions.pdf", mat["link"])
	assert.Equal(t, "lesson", mat["type"]) // default type
}

func TestScenario_DeleteNonExistentEventSucceeds(t *testing.T) {
	app := newCalendarTestApp(t)
	ck := sessionCookie(t, doLogin(t, app, testPassword))
	require.NotNil(t, ck)

	resp := doJSON(t, app, http.MethodDelete, "/api/events/424242", "", ck)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])
}

func TestScenario_UpsertDayConfigCoalescesThroughStore(t *testing.T) {
	app := newCalendarTestApp(t)
	ck := sessionCookie(t, doLogin(t, app, testPassword))
	require.NotNil(t, ck)

	resp := doJSON(t, app, http.MethodPost, "/api/date-configs",
		`{"dateKey":"2024-03-01","config":{"dayType":"A"}}`, ck)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// update color saja → dayType tersimpan tidak boleh terhapus
	resp = doJSON(t, app, http.MethodPost, "/api/date-configs",
		`{"dateKey":"2024-03-01","config":{"color":"#fff"}}`, ck)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	grouped := decodeBody(t, doJSON(t, app, http.MethodGet, "/api/date-configs", "", nil))
	require.Contains(t, grouped, "2024-03-01")
	cfg := grouped["2024-03-01"].(map[string]any)
	assert.Equal(t, "#fff", cfg["color"])
	assert.Equal(t, "A", cfg["dayType"])
	assert.Equal(t, false, cfg["isAccess"])
}

// Query harus jalan di user context request, supaya timeout guard dari
// middleware benar-benar mengikat ke DB call.
func TestQueriesRunOnUserContext(t *testing.T) {
	app := newCalendarTestApp(t, func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/date-configs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
