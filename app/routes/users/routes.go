package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/users", auth.AuthMiddleware, auth.RequirePermission(auth.ManageUsers))

	api.Get("/", func(c *fiber.Ctx) error { return ListUsersAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateUserAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeactivateUserAPI(c, db) })
}
