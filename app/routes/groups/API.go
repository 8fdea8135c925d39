package groups

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/models"
)

var validate = validator.New()

func ListGroupsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	groups, err := database.ListGroups(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": groups})
}

func GetGroupAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}

	group, err := database.GetGroupByID(db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("group %d not found", id)
		}
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": group})
}

func GetGroupStudentsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}

	ok, err := database.GroupExists(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", id)
	}

	students, err := database.GetStudentsByGroup(db, id)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": students})
}

// GetGroupStatisticsAPI returns the per-subject grade breakdown of one
// group.
func GetGroupStatisticsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}

	ok, err := database.GroupExists(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", id)
	}

	stats, err := database.GetGroupSubjectStats(db, id)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func CreateGroupAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&group); err != nil {
		return apperr.Validation("invalid group: %v", err)
	}

	if err := database.CreateGroup(db, &group); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": group})
}

func UpdateGroupAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}

	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return apperr.Validation("invalid request body")
	}
	group.ID = id
	if err := validate.Struct(&group); err != nil {
		return apperr.Validation("invalid group: %v", err)
	}

	found, err := database.UpdateGroup(db, &group)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("group %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true, "data": group})
}
