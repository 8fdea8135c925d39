package students

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

func ListStudentsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	page, limit := ParsePagination(c)

	filters := database.StudentFilters{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if groupID := c.QueryInt("group_id"); groupID > 0 {
		filters.GroupID = int64(groupID)
	}

	students, total, err := database.ListStudents(db, filters)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"page":    page,
		"limit":   limit,
		"total":   total,
	})
}

func GetStudentAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid student id")
	}

	student, err := database.GetStudentByID(db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("student %d not found", id)
		}
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": student})
}

func CreateStudentAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&student); err != nil {
		return apperr.Validation("invalid student: %v", err)
	}

	if student.GroupID != nil {
		ok, err := database.GroupExists(db, *student.GroupID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("group %d not found", *student.GroupID)
		}
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": student})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid student id")
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return apperr.Validation("invalid request body")
	}
	student.ID = id
	if err := validate.Struct(&student); err != nil {
		return apperr.Validation("invalid student: %v", err)
	}

	if student.GroupID != nil {
		ok, err := database.GroupExists(db, *student.GroupID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("group %d not found", *student.GroupID)
		}
	}

	found, err := database.UpdateStudent(db, &student)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("student %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true, "data": student})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid student id")
	}

	found, err := database.DeleteStudent(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("student %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}
