package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

// StudentFilters represents filtering options for the students list.
type StudentFilters struct {
	GroupID int64
	Search  string
	Limit   int
	Offset  int
}

// ListStudents returns one page of students plus the total count for the
// same filter.
func ListStudents(db *sqlx.DB, f StudentFilters) ([]models.StudentWithGroup, int, error) {
	where := []string{}
	args := []interface{}{}

	if f.GroupID > 0 {
		args = append(args, f.GroupID)
		where = append(where, fmt.Sprintf("s.group_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(LOWER(s.name) LIKE LOWER($%d) OR s.student_card LIKE $%d)", n, n))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM students s` + clause
	if err := db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT s.id, s.name, s.group_id, s.student_card, s.email, s.phone, s.created_at,
		       g.name AS group_name
		FROM students s
		LEFT JOIN groups g ON s.group_id = g.id` + clause + `
		ORDER BY s.name`
	args = append(args, f.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	students := []models.StudentWithGroup{}
	if err := db.Select(&students, query, args...); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func GetStudentByID(db *sqlx.DB, id int64) (*models.StudentWithGroup, error) {
	var student models.StudentWithGroup
	err := db.Get(&student, `
		SELECT s.id, s.name, s.group_id, s.student_card, s.email, s.phone, s.created_at,
		       g.name AS group_name
		FROM students s
		LEFT JOIN groups g ON s.group_id = g.id
		WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func GetStudentsByGroup(db *sqlx.DB, groupID int64) ([]models.Student, error) {
	students := []models.Student{}
	err := db.Select(&students, `
		SELECT id, name, group_id, student_card, email, phone, created_at
		FROM students
		WHERE group_id = $1
		ORDER BY name`, groupID)
	return students, err
}

func StudentExists(db *sqlx.DB, id int64) (bool, error) {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM students WHERE id = $1`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateStudent(db *sqlx.DB, s *models.Student) error {
	return db.QueryRowx(`
		INSERT INTO students (name, group_id, student_card, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		s.Name, s.GroupID, s.StudentCard, s.Email, s.Phone,
	).Scan(&s.ID)
}

func UpdateStudent(db *sqlx.DB, s *models.Student) (bool, error) {
	res, err := db.Exec(`
		UPDATE students
		SET name = $1, group_id = $2, student_card = $3, email = $4, phone = $5
		WHERE id = $6`,
		s.Name, s.GroupID, s.StudentCard, s.Email, s.Phone, s.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteStudent(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
