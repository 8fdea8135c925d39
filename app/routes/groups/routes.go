package groups

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupGroupsRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/groups", auth.AuthMiddleware)

	api.Get("/", auth.RequirePermission(auth.ViewGroups),
		func(c *fiber.Ctx) error { return ListGroupsAPI(c, db) })
	api.Get("/:id", auth.RequirePermission(auth.ViewGroups),
		func(c *fiber.Ctx) error { return GetGroupAPI(c, db) })
	api.Get("/:id/students", auth.RequirePermission(auth.ViewStudents),
		func(c *fiber.Ctx) error { return GetGroupStudentsAPI(c, db) })
	api.Get("/:id/statistics", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetGroupStatisticsAPI(c, db) })

	api.Post("/", auth.RequirePermission(auth.ManageGroups),
		func(c *fiber.Ctx) error { return CreateGroupAPI(c, db) })
	api.Put("/:id", auth.RequirePermission(auth.ManageGroups),
		func(c *fiber.Ctx) error { return UpdateGroupAPI(c, db) })
}
