package auth

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
)

func LoginAPI(c *fiber.Ctx, db *sqlx.DB) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return apperr.Validation("username and password are required")
	}

	user, err := database.GetUserByUsername(db, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.Unauthorized("invalid credentials")
		}
		return apperr.Internal(err)
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return apperr.Unauthorized("invalid credentials")
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return apperr.Internal(err)
	}

	profile, err := database.GetUserProfile(db, user.ID)
	if err != nil {
		return apperr.Internal(err)
	}

	// Best effort, the login already succeeded.
	go func() { _ = database.TouchLastLogin(db, user.ID) }()

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    profile,
	})
}

func MeAPI(c *fiber.Ctx, db *sqlx.DB) error {
	claims := CurrentClaims(c)

	profile, err := database.GetUserProfile(db, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "user": profile})
}

func UpdateProfileAPI(c *fiber.Ctx, db *sqlx.DB) error {
	type UpdateProfileRequest struct {
		Email           *string `json:"email"`
		CurrentPassword string  `json:"current_password"`
		NewPassword     string  `json:"new_password"`
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	claims := CurrentClaims(c)

	if req.Email != nil {
		if err := database.UpdateUserEmail(db, claims.UserID, req.Email); err != nil {
			return apperr.Internal(err)
		}
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			return apperr.Validation("new password must be at least 6 characters")
		}

		user, err := database.GetUserByID(db, claims.UserID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !CheckPasswordHash(req.CurrentPassword, user.Password) {
			return apperr.Validation("current password is incorrect")
		}

		hash, err := HashPassword(req.NewPassword)
		if err != nil {
			return apperr.Internal(err)
		}
		if err := database.UpdateUserPassword(db, claims.UserID, hash); err != nil {
			return apperr.Internal(err)
		}
	}

	profile, err := database.GetUserProfile(db, claims.UserID)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "user": profile})
}
