package database

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

// ListStudentGrades returns all grades of one student with subject and
// teacher names joined in, newest first.
func ListStudentGrades(db *sqlx.DB, studentID int64) ([]models.StudentGrade, error) {
	grades := []models.StudentGrade{}
	err := db.Select(&grades, `
		SELECT g.id, g.student_id, g.subject_id, g.grade, g.is_pass, g.grade_type,
		       g.date, g.teacher_id, g.notes, g.created_at,
		       sub.name AS subject_name,
		       t.name AS teacher_name
		FROM grades g
		JOIN subjects sub ON g.subject_id = sub.id
		LEFT JOIN teachers t ON g.teacher_id = t.id
		WHERE g.student_id = $1
		ORDER BY g.date DESC, g.id DESC`, studentID)
	return grades, err
}

// GetGradebook builds the per-group roster for one subject: every student
// of the group joined against their grade row for that subject, if any.
func GetGradebook(db *sqlx.DB, groupID, subjectID int64) (*models.Gradebook, error) {
	var group models.Group
	if err := db.Get(&group, `SELECT id, name, course, specialization, created_at FROM groups WHERE id = $1`, groupID); err != nil {
		return nil, err
	}

	var subject models.Subject
	if err := db.Get(&subject, `SELECT id, name, hours, semester, teacher_id, created_at FROM subjects WHERE id = $1`, subjectID); err != nil {
		return nil, err
	}

	rows := []models.GradebookRow{}
	err := db.Select(&rows, `
		SELECT s.id AS student_id, s.name AS student_name, s.student_card,
		       g.grade, g.is_pass, g.grade_type, g.date, g.teacher_id
		FROM students s
		LEFT JOIN grades g ON s.id = g.student_id AND g.subject_id = $1
		WHERE s.group_id = $2
		ORDER BY s.name`, subjectID, groupID)
	if err != nil {
		return nil, err
	}

	return &models.Gradebook{
		Group:    group.Name,
		Subject:  subject.Name,
		Students: rows,
	}, nil
}

// UpsertGrade inserts or updates the single row identified by
// (student_id, subject_id, grade_type). The lookup and write run in one
// transaction so two concurrent submissions for the same key cannot
// produce duplicate rows. Last writer wins.
func UpsertGrade(db *sqlx.DB, g *models.Grade) (*models.UpsertResult, error) {
	var result models.UpsertResult

	err := inTx(db, func(tx *sqlx.Tx) error {
		var existingID int64
		err := tx.Get(&existingID, `
			SELECT id FROM grades
			WHERE student_id = $1 AND subject_id = $2 AND grade_type = $3`,
			g.StudentID, g.SubjectID, g.GradeType)

		switch {
		case err == nil:
			_, err = tx.Exec(`
				UPDATE grades
				SET grade = $1, is_pass = $2, date = $3, teacher_id = $4, notes = $5
				WHERE id = $6`,
				g.Grade, g.IsPass, g.Date, g.TeacherID, g.Notes, existingID)
			if err != nil {
				return err
			}
			result = models.UpsertResult{ID: existingID, Created: false}
			return nil

		case errors.Is(err, sql.ErrNoRows):
			var id int64
			err = tx.QueryRowx(`
				INSERT INTO grades (student_id, subject_id, grade, is_pass, grade_type, date, teacher_id, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id`,
				g.StudentID, g.SubjectID, g.Grade, g.IsPass, g.GradeType, g.Date, g.TeacherID, g.Notes,
			).Scan(&id)
			if err != nil {
				return err
			}
			result = models.UpsertResult{ID: id, Created: true}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func GetGradeByID(db *sqlx.DB, id int64) (*models.Grade, error) {
	var grade models.Grade
	err := db.Get(&grade, `
		SELECT id, student_id, subject_id, grade, is_pass, grade_type, date, teacher_id, notes, created_at
		FROM grades
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func DeleteGrade(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
