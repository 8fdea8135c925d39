package subjects

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/subjects", auth.AuthMiddleware)

	api.Get("/", auth.RequirePermission(auth.ViewSubjects),
		func(c *fiber.Ctx) error { return ListSubjectsAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageSubjects),
		func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })
	api.Put("/:id", auth.RequirePermission(auth.ManageSubjects),
		func(c *fiber.Ctx) error { return UpdateSubjectAPI(c, db) })
	api.Delete("/:id", auth.RequirePermission(auth.ManageSubjects),
		func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, db) })
}
