package teachers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/models"
)

var validate = validator.New()

func ListTeachersAPI(c *fiber.Ctx, db *sqlx.DB) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	teachers, total, err := database.ListTeachers(db, limit, (page-1)*limit)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    teachers,
		"page":    page,
		"limit":   limit,
		"total":   total,
	})
}

func CreateTeacherAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var teacher models.Teacher
	if err := c.BodyParser(&teacher); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&teacher); err != nil {
		return apperr.Validation("invalid teacher: %v", err)
	}

	if err := database.CreateTeacher(db, &teacher); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": teacher})
}

func GetTeacherStatisticsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := teacherIDParam(c, db)
	if err != nil {
		return err
	}

	stats, err := database.GetTeacherStats(db, id)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// GetTeacherGradesAPI returns the most recent grades a teacher issued.
func GetTeacherGradesAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := teacherIDParam(c, db)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	grades, err := database.ListTeacherGrades(db, id, limit)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": grades})
}

// GetTeacherGroupsAPI returns the groups a teacher works with, either
// through issued grades or the weekly schedule.
func GetTeacherGroupsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := teacherIDParam(c, db)
	if err != nil {
		return err
	}

	groups, err := database.ListTeacherGroups(db, id)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": groups})
}

func teacherIDParam(c *fiber.Ctx, db *sqlx.DB) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid teacher id")
	}

	ok, err := database.TeacherExists(db, id)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if !ok {
		return 0, apperr.NotFound("teacher %d not found", id)
	}
	return id, nil
}
