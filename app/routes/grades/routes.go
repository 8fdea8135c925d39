package grades

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupGradesRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/grades", auth.AuthMiddleware)

	api.Get("/student/:studentId", auth.SelfStudentOrPermission("studentId", auth.ViewGrades),
		func(c *fiber.Ctx) error { return GetStudentGradesAPI(c, db) })
	api.Get("/gradebook/:groupId/:subjectId", auth.RequirePermission(auth.ViewGrades),
		func(c *fiber.Ctx) error { return GetGradebookAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageGrades),
		func(c *fiber.Ctx) error { return SubmitGradeAPI(c, db) })
	api.Post("/credit", auth.RequirePermission(auth.ManageGrades),
		func(c *fiber.Ctx) error { return SubmitCreditAPI(c, db) })
	api.Delete("/:id", auth.RequirePermission(auth.ManageGrades),
		func(c *fiber.Ctx) error { return DeleteGradeAPI(c, db) })
}
