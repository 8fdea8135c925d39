package attendance

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/attendance", auth.AuthMiddleware)

	api.Get("/student/:studentId", auth.SelfStudentOrPermission("studentId", auth.ViewAttendance),
		func(c *fiber.Ctx) error { return GetStudentAttendanceAPI(c, db) })
	api.Get("/student/:studentId/stats", auth.SelfStudentOrPermission("studentId", auth.ViewAttendance),
		func(c *fiber.Ctx) error { return GetStudentAttendanceStatsAPI(c, db) })
	api.Get("/group/:groupId/subject/:subjectId", auth.RequirePermission(auth.ViewAttendance),
		func(c *fiber.Ctx) error { return GetGroupAttendanceAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageAttendance),
		func(c *fiber.Ctx) error { return SubmitAttendanceAPI(c, db) })
}
