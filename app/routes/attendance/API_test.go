package attendance

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/models"
	"github.com/FanTom52/zachetka/app/routes/auth"
)

type testEnv struct {
	app *fiber.App
	db  *sqlx.DB

	groupID   int64
	studentA  int64
	studentB  int64
	teacherID int64
	subjectID int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	auth.Init("test-secret", time.Hour, 4)

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
	SetupAttendanceRoutes(app, db)

	env := &testEnv{app: app, db: db}

	group := &models.Group{Name: "ИТ-21", Course: 2}
	require.NoError(t, database.CreateGroup(db, group))
	env.groupID = group.ID

	s1 := &models.Student{Name: "Иванов Иван", GroupID: &group.ID, StudentCard: "СТ-001"}
	require.NoError(t, database.CreateStudent(db, s1))
	env.studentA = s1.ID
	s2 := &models.Student{Name: "Петрова Анна", GroupID: &group.ID, StudentCard: "СТ-002"}
	require.NoError(t, database.CreateStudent(db, s2))
	env.studentB = s2.ID

	teacher := &models.Teacher{Name: "Сидорова Елена"}
	require.NoError(t, database.CreateTeacher(db, teacher))
	env.teacherID = teacher.ID

	subject := &models.Subject{Name: "Базы данных", TeacherID: &teacher.ID}
	require.NoError(t, database.CreateSubject(db, subject))
	env.subjectID = subject.ID

	return env
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func teacherToken(t *testing.T, teacherID int64) string {
	t.Helper()
	token, err := auth.GenerateJWT(&models.User{
		ID: 100, Username: "teacher", Role: models.RoleTeacher, TeacherID: &teacherID,
	})
	require.NoError(t, err)
	return token
}

func studentToken(t *testing.T, studentID int64) string {
	t.Helper()
	token, err := auth.GenerateJWT(&models.User{
		ID: 200, Username: "student", Role: models.RoleStudent, StudentID: &studentID,
	})
	require.NoError(t, err)
	return token
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func TestSubmitAttendanceReplacesDay(t *testing.T) {
	env := newTestEnv(t)
	token := teacherToken(t, env.teacherID)

	resp := env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
			{"student_id": env.studentB, "status": "late"},
		},
	})
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Saved   int `json:"saved"`
		Skipped int `json:"skipped"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Saved)
	assert.Equal(t, 0, body.Skipped)

	// Second submission for the same day replaces the first.
	resp = env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "sick"},
		},
	})
	assert.Equal(t, 200, resp.StatusCode)

	var count int
	require.NoError(t, env.db.Get(&count, `SELECT COUNT(*) FROM attendance WHERE date = '2025-09-15'`))
	assert.Equal(t, 1, count)

	var status string
	require.NoError(t, env.db.Get(&status, `SELECT status FROM attendance WHERE date = '2025-09-15'`))
	assert.Equal(t, "sick", status)
}

func TestSubmitAttendanceValidation(t *testing.T) {
	env := newTestEnv(t)
	token := teacherToken(t, env.teacherID)

	// Unknown status value.
	resp := env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "vanished"},
		},
	})
	assert.Equal(t, 400, resp.StatusCode)

	// Malformed date.
	resp = env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "15.09.2025",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
		},
	})
	assert.Equal(t, 400, resp.StatusCode)

	// Empty record list.
	resp = env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{},
	})
	assert.Equal(t, 400, resp.StatusCode)

	// Unknown group.
	resp = env.request(t, "POST", "/api/attendance", token, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   9999,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
		},
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestStudentCannotSubmitAttendance(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, "POST", "/api/attendance", studentToken(t, env.studentA), fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
		},
	})
	assert.Equal(t, 403, resp.StatusCode)
}

func TestStudentReadsOwnAttendanceOnly(t *testing.T) {
	env := newTestEnv(t)
	teacher := teacherToken(t, env.teacherID)

	resp := env.request(t, "POST", "/api/attendance", teacher, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
			{"student_id": env.studentB, "status": "absent"},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	own := studentToken(t, env.studentA)
	resp = env.request(t, "GET", "/api/attendance/student/"+itoa(env.studentA), own, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp = env.request(t, "GET", "/api/attendance/student/"+itoa(env.studentB), own, nil)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestGroupAttendanceRoster(t *testing.T) {
	env := newTestEnv(t)
	teacher := teacherToken(t, env.teacherID)

	resp := env.request(t, "POST", "/api/attendance", teacher, fiber.Map{
		"date":       "2025-09-15",
		"subject_id": env.subjectID,
		"group_id":   env.groupID,
		"attendance_records": []fiber.Map{
			{"student_id": env.studentA, "status": "present"},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	resp = env.request(t, "GET",
		"/api/attendance/group/"+itoa(env.groupID)+"/subject/"+itoa(env.subjectID)+"?date=2025-09-15",
		teacher, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []models.AttendanceRosterRow `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
}

func TestStudentAttendanceStatsPercentages(t *testing.T) {
	env := newTestEnv(t)
	teacher := teacherToken(t, env.teacherID)

	for i, status := range []string{"present", "present", "absent", "late"} {
		resp := env.request(t, "POST", "/api/attendance", teacher, fiber.Map{
			"date":       "2025-09-1" + strconv.Itoa(i+1),
			"subject_id": env.subjectID,
			"group_id":   env.groupID,
			"attendance_records": []fiber.Map{
				{"student_id": env.studentA, "status": status},
			},
		})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp := env.request(t, "GET", "/api/attendance/student/"+itoa(env.studentA)+"/stats",
		studentToken(t, env.studentA), nil)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []struct {
			Status     string  `json:"status"`
			Count      int     `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 4, body.Total)

	byStatus := map[string]float64{}
	for _, s := range body.Data {
		byStatus[s.Status] = s.Percentage
	}
	assert.InDelta(t, 50.0, byStatus["present"], 0.001)
	assert.InDelta(t, 25.0, byStatus["absent"], 0.001)
}
