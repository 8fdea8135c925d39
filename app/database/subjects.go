package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

func ListSubjects(db *sqlx.DB, limit, offset int) ([]models.SubjectWithTeacher, int, error) {
	var total int
	if err := db.Get(&total, `SELECT COUNT(*) FROM subjects`); err != nil {
		return nil, 0, err
	}

	subjects := []models.SubjectWithTeacher{}
	err := db.Select(&subjects, `
		SELECT s.id, s.name, s.hours, s.semester, s.teacher_id, s.created_at,
		       t.name AS teacher_name
		FROM subjects s
		LEFT JOIN teachers t ON s.teacher_id = t.id
		ORDER BY s.name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

func SubjectExists(db *sqlx.DB, id int64) (bool, error) {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM subjects WHERE id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateSubject(db *sqlx.DB, s *models.Subject) error {
	return db.QueryRowx(`
		INSERT INTO subjects (name, hours, semester, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.Name, s.Hours, s.Semester, s.TeacherID,
	).Scan(&s.ID)
}

func UpdateSubject(db *sqlx.DB, s *models.Subject) (bool, error) {
	res, err := db.Exec(`
		UPDATE subjects
		SET name = $1, hours = $2, semester = $3, teacher_id = $4
		WHERE id = $5`,
		s.Name, s.Hours, s.Semester, s.TeacherID, s.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteSubject(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
