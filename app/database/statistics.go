package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

// GetOverview counts the main entities and the numeric grade average
// across the whole system.
func GetOverview(db *sqlx.DB) (*models.Overview, error) {
	var o models.Overview
	err := db.Get(&o, `
		SELECT
			(SELECT COUNT(*) FROM students) AS students,
			(SELECT COUNT(*) FROM teachers) AS teachers,
			(SELECT COUNT(*) FROM subjects) AS subjects,
			(SELECT COUNT(*) FROM grades) AS grades,
			(SELECT COUNT(*) FROM groups) AS groups,
			COALESCE((SELECT AVG(CAST(grade AS REAL)) FROM grades WHERE grade IS NOT NULL), 0) AS average_grade`)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GroupsSummary returns per-group size, grade average and the share of
// numeric grades at 4 or above.
func GroupsSummary(db *sqlx.DB) ([]models.GroupSummary, error) {
	groups := []models.GroupSummary{}
	err := db.Select(&groups, `
		SELECT gr.id, gr.name AS group_name, gr.specialization,
		       COUNT(DISTINCT s.id) AS student_count,
		       AVG(CAST(g.grade AS REAL)) AS average_grade,
		       COALESCE(SUM(CASE WHEN g.grade >= 4 THEN 1 ELSE 0 END) * 100.0 / NULLIF(COUNT(g.grade), 0), 0) AS success_rate
		FROM groups gr
		LEFT JOIN students s ON s.group_id = gr.id
		LEFT JOIN grades g ON g.student_id = s.id AND g.grade IS NOT NULL
		GROUP BY gr.id, gr.name, gr.specialization
		ORDER BY gr.name`)
	return groups, err
}

// GetGroupSubjectStats breaks one group's numeric grades down by
// subject and grade band.
func GetGroupSubjectStats(db *sqlx.DB, groupID int64) ([]models.GroupSubjectStats, error) {
	stats := []models.GroupSubjectStats{}
	err := db.Select(&stats, `
		SELECT sub.name AS subject_name,
		       COUNT(DISTINCT s.id) AS total_students,
		       COUNT(g.grade) AS total_grades,
		       AVG(CAST(g.grade AS REAL)) AS average_grade,
		       COALESCE(SUM(CASE WHEN g.grade = 5 THEN 1 ELSE 0 END), 0) AS excellent_count,
		       COALESCE(SUM(CASE WHEN g.grade = 4 THEN 1 ELSE 0 END), 0) AS good_count,
		       COALESCE(SUM(CASE WHEN g.grade = 3 THEN 1 ELSE 0 END), 0) AS satisfactory_count,
		       COALESCE(SUM(CASE WHEN g.grade = 2 THEN 1 ELSE 0 END), 0) AS fail_count
		FROM subjects sub
		JOIN grades g ON g.subject_id = sub.id AND g.grade IS NOT NULL
		JOIN students s ON g.student_id = s.id
		WHERE s.group_id = $1
		GROUP BY sub.id, sub.name
		ORDER BY sub.name`, groupID)
	return stats, err
}

// SubjectsSummary ranks subjects by their numeric grade average.
func SubjectsSummary(db *sqlx.DB) ([]models.SubjectSummary, error) {
	subjects := []models.SubjectSummary{}
	err := db.Select(&subjects, `
		SELECT sub.id, sub.name AS subject_name, sub.hours, sub.semester,
		       t.name AS teacher_name,
		       AVG(CAST(g.grade AS REAL)) AS average_grade,
		       COUNT(g.grade) AS grade_count
		FROM subjects sub
		LEFT JOIN teachers t ON sub.teacher_id = t.id
		LEFT JOIN grades g ON g.subject_id = sub.id AND g.grade IS NOT NULL
		GROUP BY sub.id, sub.name, sub.hours, sub.semester, t.name
		ORDER BY average_grade DESC NULLS LAST`)
	return subjects, err
}

// GradeDistribution returns the count and share of each numeric grade.
func GradeDistribution(db *sqlx.DB) ([]models.GradeBucket, error) {
	buckets := []models.GradeBucket{}
	err := db.Select(&buckets, `
		SELECT grade, COUNT(*) AS count,
		       COUNT(*) * 100.0 / (SELECT COUNT(*) FROM grades WHERE grade IS NOT NULL) AS percentage
		FROM grades
		WHERE grade IS NOT NULL
		GROUP BY grade
		ORDER BY grade`)
	return buckets, err
}

// MonthlyAverages returns the grade average per calendar month for the
// last twelve months that have grades.
func MonthlyAverages(db *sqlx.DB) ([]models.MonthlyAverage, error) {
	months := []models.MonthlyAverage{}
	err := db.Select(&months, `
		SELECT substr(date, 1, 7) AS month,
		       AVG(CAST(grade AS REAL)) AS average_grade,
		       COUNT(grade) AS grade_count
		FROM grades
		WHERE grade IS NOT NULL
		GROUP BY substr(date, 1, 7)
		ORDER BY month DESC
		LIMIT 12`)
	return months, err
}
