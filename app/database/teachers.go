package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

func ListTeachers(db *sqlx.DB, limit, offset int) ([]models.Teacher, int, error) {
	var total int
	if err := db.Get(&total, `SELECT COUNT(*) FROM teachers`); err != nil {
		return nil, 0, err
	}

	teachers := []models.Teacher{}
	err := db.Select(&teachers, `
		SELECT id, name, email, department, position, created_at
		FROM teachers
		ORDER BY name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func TeacherExists(db *sqlx.DB, id int64) (bool, error) {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM teachers WHERE id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateTeacher(db *sqlx.DB, t *models.Teacher) error {
	return db.QueryRowx(`
		INSERT INTO teachers (name, email, department, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		t.Name, t.Email, t.Department, t.Position,
	).Scan(&t.ID)
}

// GetTeacherStats aggregates the grading activity of one teacher.
func GetTeacherStats(db *sqlx.DB, teacherID int64) (*models.TeacherStats, error) {
	var stats models.TeacherStats
	err := db.Get(&stats, `
		SELECT COUNT(DISTINCT g.student_id) AS total_students,
		       COUNT(DISTINCT g.subject_id) AS total_subjects,
		       COUNT(g.id) AS total_grades,
		       AVG(g.grade) AS average_grade
		FROM grades g
		WHERE g.teacher_id = $1`, teacherID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListTeacherGrades returns the most recent grades issued by a teacher.
func ListTeacherGrades(db *sqlx.DB, teacherID int64, limit int) ([]models.StudentGrade, error) {
	grades := []models.StudentGrade{}
	err := db.Select(&grades, `
		SELECT g.id, g.student_id, g.subject_id, g.grade, g.is_pass, g.grade_type,
		       g.date, g.teacher_id, g.notes, g.created_at,
		       sub.name AS subject_name,
		       t.name AS teacher_name
		FROM grades g
		JOIN subjects sub ON g.subject_id = sub.id
		LEFT JOIN teachers t ON g.teacher_id = t.id
		WHERE g.teacher_id = $1
		ORDER BY g.date DESC, g.id DESC
		LIMIT $2`, teacherID, limit)
	return grades, err
}

// ListTeacherGroups returns the groups a teacher has graded or teaches
// per the weekly schedule.
func ListTeacherGroups(db *sqlx.DB, teacherID int64) ([]models.Group, error) {
	groups := []models.Group{}
	err := db.Select(&groups, `
		SELECT DISTINCT gr.id, gr.name, gr.course, gr.specialization, gr.created_at
		FROM groups gr
		JOIN students s ON s.group_id = gr.id
		JOIN grades g ON g.student_id = s.id
		WHERE g.teacher_id = $1
		UNION
		SELECT DISTINCT gr.id, gr.name, gr.course, gr.specialization, gr.created_at
		FROM groups gr
		JOIN schedule sch ON sch.group_id = gr.id
		WHERE sch.teacher_id = $2
		ORDER BY name`, teacherID, teacherID)
	return groups, err
}
