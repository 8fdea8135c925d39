package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

func SetupAuthRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/auth")

	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })

	api.Use(AuthMiddleware)
	api.Get("/me", func(c *fiber.Ctx) error { return MeAPI(c, db) })
	api.Put("/profile", func(c *fiber.Ctx) error { return UpdateProfileAPI(c, db) })
}
