package users

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/models"
	"github.com/FanTom52/zachetka/app/routes/auth"
)

var validate = validator.New()

func ListUsersAPI(c *fiber.Ctx, db *sqlx.DB) error {
	users, err := database.ListUsers(db)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

func CreateUserAPI(c *fiber.Ctx, db *sqlx.DB) error {
	type CreateUserRequest struct {
		Username  string  `json:"username" validate:"required,min=3"`
		Password  string  `json:"password" validate:"required,min=6"`
		Role      string  `json:"role" validate:"required,oneof=student teacher admin"`
		StudentID *int64  `json:"student_id"`
		TeacherID *int64  `json:"teacher_id"`
		Email     *string `json:"email" validate:"omitempty,email"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid user: %v", err)
	}

	role := models.Role(req.Role)
	if role == models.RoleStudent && req.StudentID == nil {
		return apperr.Validation("student accounts must link a student_id")
	}
	if role == models.RoleTeacher && req.TeacherID == nil {
		return apperr.Validation("teacher accounts must link a teacher_id")
	}

	if req.StudentID != nil {
		ok, err := database.StudentExists(db, *req.StudentID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("student %d not found", *req.StudentID)
		}
	}
	if req.TeacherID != nil {
		ok, err := database.TeacherExists(db, *req.TeacherID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.NotFound("teacher %d not found", *req.TeacherID)
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperr.Internal(err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		Role:      role,
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Email:     req.Email,
	}
	if err := database.CreateUser(db, user); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("username already taken")
		}
		return apperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

func DeactivateUserAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid user id")
	}

	claims := auth.CurrentClaims(c)
	if claims.UserID == id {
		return apperr.Validation("cannot deactivate your own account")
	}

	found, err := database.DeactivateUser(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("user %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}

// isUniqueViolation matches unique constraint errors from both backing
// drivers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
