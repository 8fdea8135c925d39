package students

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/", auth.RequirePermission(auth.ViewStudents),
		func(c *fiber.Ctx) error { return ListStudentsAPI(c, db) })
	api.Get("/:id", auth.SelfStudentOrPermission("id", auth.ViewStudents),
		func(c *fiber.Ctx) error { return GetStudentAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageStudents),
		func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Put("/:id", auth.RequirePermission(auth.ManageStudents),
		func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", auth.RequirePermission(auth.ManageStudents),
		func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })
}
