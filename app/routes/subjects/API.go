package subjects

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

func ListSubjectsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	subjects, total, err := database.ListSubjects(db, limit, (page-1)*limit)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    subjects,
		"page":    page,
		"limit":   limit,
		"total":   total,
	})
}

func CreateSubjectAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&subject); err != nil {
		return apperr.Validation("invalid subject: %v", err)
	}

	if subject.TeacherID != nil {
		ok, err := database.TeacherExists(db, *subject.TeacherID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("teacher %d not found", *subject.TeacherID)
		}
	}

	if err := database.CreateSubject(db, &subject); err != nil {
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": subject})
}

func UpdateSubjectAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid subject id")
	}

	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return apperr.Validation("invalid request body")
	}
	subject.ID = id
	if err := validate.Struct(&subject); err != nil {
		return apperr.Validation("invalid subject: %v", err)
	}

	if subject.TeacherID != nil {
		ok, err := database.TeacherExists(db, *subject.TeacherID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("teacher %d not found", *subject.TeacherID)
		}
	}

	found, err := database.UpdateSubject(db, &subject)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("subject %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true, "data": subject})
}

func DeleteSubjectAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid subject id")
	}

	found, err := database.DeleteSubject(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("subject %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}
