package statistics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
)

func GetOverviewAPI(c *fiber.Ctx, db *sqlx.DB) error {
	overview, err := database.GetOverview(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": overview})
}

func GetGroupsSummaryAPI(c *fiber.Ctx, db *sqlx.DB) error {
	groups, err := database.GroupsSummary(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": groups})
}

func GetSubjectsSummaryAPI(c *fiber.Ctx, db *sqlx.DB) error {
	subjects, err := database.SubjectsSummary(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": subjects})
}

func GetGradeDistributionAPI(c *fiber.Ctx, db *sqlx.DB) error {
	buckets, err := database.GradeDistribution(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": buckets})
}

func GetMonthlyAveragesAPI(c *fiber.Ctx, db *sqlx.DB) error {
	months, err := database.MonthlyAverages(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": months})
}
