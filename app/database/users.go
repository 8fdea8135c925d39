package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

func GetUserByUsername(db *sqlx.DB, username string) (*models.User, error) {
	var user models.User
	err := db.Get(&user, `
		SELECT id, username, password, role, student_id, teacher_id, email, is_active, last_login, created_at
		FROM users
		WHERE username = $1 AND is_active = TRUE`, username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(db *sqlx.DB, id int64) (*models.User, error) {
	var user models.User
	err := db.Get(&user, `
		SELECT id, username, password, role, student_id, teacher_id, email, is_active, last_login, created_at
		FROM users
		WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserProfile resolves the linked student or teacher name; admins fall
// back to their username.
func GetUserProfile(db *sqlx.DB, id int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Get(&profile, `
		SELECT u.id, u.username, u.role,
		       COALESCE(s.name, t.name, u.username) AS name,
		       u.email, u.student_id, u.teacher_id
		FROM users u
		LEFT JOIN students s ON u.student_id = s.id
		LEFT JOIN teachers t ON u.teacher_id = t.id
		WHERE u.id = $1 AND u.is_active = TRUE`, id)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// TouchLastLogin updates the last-login timestamp. Callers treat this as
// best effort.
func TouchLastLogin(db *sqlx.DB, id int64) error {
	_, err := db.Exec(`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, id)
	return err
}

func CreateUser(db *sqlx.DB, user *models.User) error {
	return db.QueryRowx(`
		INSERT INTO users (username, password, role, student_id, teacher_id, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Username, user.Password, user.Role, user.StudentID, user.TeacherID, user.Email,
	).Scan(&user.ID)
}

func ListUsers(db *sqlx.DB) ([]models.UserProfile, error) {
	users := []models.UserProfile{}
	err := db.Select(&users, `
		SELECT u.id, u.username, u.role,
		       COALESCE(s.name, t.name, u.username) AS name,
		       u.email, u.student_id, u.teacher_id
		FROM users u
		LEFT JOIN students s ON u.student_id = s.id
		LEFT JOIN teachers t ON u.teacher_id = t.id
		WHERE u.is_active = TRUE
		ORDER BY u.username`)
	return users, err
}

func UpdateUserEmail(db *sqlx.DB, id int64, email *string) error {
	_, err := db.Exec(`UPDATE users SET email = $1 WHERE id = $2`, email, id)
	return err
}

func UpdateUserPassword(db *sqlx.DB, id int64, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, id)
	return err
}

// DeactivateUser soft-deletes an account; users are never hard-deleted.
func DeactivateUser(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`UPDATE users SET is_active = FALSE WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
