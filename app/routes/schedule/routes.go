package schedule

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

// Group and teacher timetables are readable by any authenticated
// account; the per-student view follows the same self-or-permission
// rule as grades and attendance. Only schedule managers can change
// anything.
func SetupScheduleRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/schedule", auth.AuthMiddleware)

	api.Get("/group/:groupId", func(c *fiber.Ctx) error { return GetGroupScheduleAPI(c, db) })
	api.Get("/student/:studentId", auth.SelfStudentOrPermission("studentId", auth.ViewSchedule),
		func(c *fiber.Ctx) error { return GetStudentScheduleAPI(c, db) })
	api.Get("/teacher/:teacherId", func(c *fiber.Ctx) error { return GetTeacherScheduleAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return CreateScheduleEntryAPI(c, db) })
	api.Put("/:id", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return UpdateScheduleEntryAPI(c, db) })
	api.Delete("/:id", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return DeleteScheduleEntryAPI(c, db) })

	session := app.Group("/api/session-schedule", auth.AuthMiddleware)

	session.Get("/", func(c *fiber.Ctx) error { return ListSessionEventsAPI(c, db) })
	session.Get("/teacher/:teacherId", func(c *fiber.Ctx) error { return GetTeacherSessionEventsAPI(c, db) })

	session.Post("/", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return CreateSessionEventAPI(c, db) })
	session.Put("/:id", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return UpdateSessionEventAPI(c, db) })
	session.Delete("/:id", auth.RequirePermission(auth.ManageSchedule),
		func(c *fiber.Ctx) error { return DeleteSessionEventAPI(c, db) })
}
