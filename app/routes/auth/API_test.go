package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
)

func newLoginApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.Seed(db, 4))

	Init("test-secret", time.Hour, 4)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.Status).JSON(fiber.Map{
					"success": false, "error": appErr.Message, "code": appErr.Code,
				})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})
	SetupAuthRoutes(app, db)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, []byte) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestLoginSuccess(t *testing.T) {
	app, _ := newLoginApp(t)

	code, raw := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "student",
		"password": "student123",
	})
	require.Equal(t, 200, code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username  string `json:"username"`
			Role      string `json:"role"`
			StudentID *int64 `json:"student_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "student", body.User.Username)
	assert.Equal(t, "student", body.User.Role)
	require.NotNil(t, body.User.StudentID)

	claims, err := ValidateJWT(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "student", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newLoginApp(t)

	code, _ := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "student",
		"password": "wrong",
	})
	assert.Equal(t, 401, code)

	code, _ = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, 401, code)

	code, _ = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "",
		"password": "",
	})
	assert.Equal(t, 400, code)
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	app, db := newLoginApp(t)

	user, err := database.GetUserByUsername(db, "student")
	require.NoError(t, err)
	found, err := database.DeactivateUser(db, user.ID)
	require.NoError(t, err)
	require.True(t, found)

	code, _ := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "student",
		"password": "student123",
	})
	assert.Equal(t, 401, code)
}

func TestMeEndpoint(t *testing.T) {
	app, db := newLoginApp(t)

	user, err := database.GetUserByUsername(db, "teacher")
	require.NoError(t, err)
	token, err := GenerateJWT(user)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		User struct {
			Username string `json:"username"`
			Name     string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "teacher", body.User.Username)
	assert.Equal(t, "Иванова Мария Петровна", body.User.Name)
}
