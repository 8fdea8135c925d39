package teachers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/teachers", auth.AuthMiddleware)

	api.Get("/", auth.RequirePermission(auth.ViewTeachers),
		func(c *fiber.Ctx) error { return ListTeachersAPI(c, db) })
	api.Get("/:id/statistics", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetTeacherStatisticsAPI(c, db) })
	api.Get("/:id/grades", auth.RequirePermission(auth.ViewGrades),
		func(c *fiber.Ctx) error { return GetTeacherGradesAPI(c, db) })
	api.Get("/:id/groups", auth.RequirePermission(auth.ViewGroups),
		func(c *fiber.Ctx) error { return GetTeacherGroupsAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageTeachers),
		func(c *fiber.Ctx) error { return CreateTeacherAPI(c, db) })
}
