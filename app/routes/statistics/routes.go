package statistics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/routes/auth"
)

func SetupStatisticsRoutes(app *fiber.App, db *sqlx.DB) {
	api := app.Group("/api/statistics", auth.AuthMiddleware)

	// The overview card is shown on every dashboard, so any
	// authenticated account may read it.
	api.Get("/overview", func(c *fiber.Ctx) error { return GetOverviewAPI(c, db) })

	api.Get("/groups", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetGroupsSummaryAPI(c, db) })
	api.Get("/subjects", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetSubjectsSummaryAPI(c, db) })
	api.Get("/grades", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetGradeDistributionAPI(c, db) })
	api.Get("/monthly", auth.RequirePermission(auth.ViewStatistics),
		func(c *fiber.Ctx) error { return GetMonthlyAveragesAPI(c, db) })
}
