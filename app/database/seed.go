package database

import (
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo dataset. It is a no-op when any users already
// exist, so it is safe to run on every start.
func Seed(db *sqlx.DB, bcryptCost int) error {
	var userCount int
	if err := db.Get(&userCount, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	return inTx(db, func(tx *sqlx.Tx) error {
		groups := []struct {
			name, specialization string
			course               int
		}{
			{"ИТ-21", "Информационные технологии", 2},
			{"П-22", "Программирование", 1},
			{"К-21", "Компьютерные сети", 2},
		}
		for _, g := range groups {
			if _, err := tx.Exec(`INSERT INTO groups (name, course, specialization) VALUES ($1, $2, $3)`,
				g.name, g.course, g.specialization); err != nil {
				return err
			}
		}

		teachers := []struct{ name, email, department, position string }{
			{"Иванова Мария Петровна", "ivanova@college.edu", "Кафедра программирования", "Доцент"},
			{"Петров Алексей Владимирович", "petrov@college.edu", "Кафедра информационных систем", "Старший преподаватель"},
			{"Сидорова Елена Николаевна", "sidorova@college.edu", "Кафедра математики", "Профессор"},
		}
		for _, t := range teachers {
			if _, err := tx.Exec(`INSERT INTO teachers (name, email, department, position) VALUES ($1, $2, $3, $4)`,
				t.name, t.email, t.department, t.position); err != nil {
				return err
			}
		}

		students := []struct {
			name, card, email string
			groupID           int64
		}{
			{"Иванов Иван Иванович", "СТ-2021-001", "ivanov@student.college.edu", 1},
			{"Петрова Анна Сергеевна", "СТ-2021-002", "petrova@student.college.edu", 1},
			{"Сидоров Петр Алексеевич", "СТ-2022-003", "sidorov@student.college.edu", 2},
			{"Козлова Мария Дмитриевна", "СТ-2021-004", "kozlova@student.college.edu", 3},
		}
		for _, s := range students {
			if _, err := tx.Exec(`INSERT INTO students (name, group_id, student_card, email) VALUES ($1, $2, $3, $4)`,
				s.name, s.groupID, s.card, s.email); err != nil {
				return err
			}
		}

		subjects := []struct {
			name            string
			hours, semester int
			teacherID       int64
		}{
			{"Программирование на Python", 144, 3, 1},
			{"Базы данных", 108, 3, 2},
			{"Высшая математика", 180, 1, 3},
			{"Веб-технологии", 90, 4, 1},
		}
		for _, s := range subjects {
			if _, err := tx.Exec(`INSERT INTO subjects (name, hours, semester, teacher_id) VALUES ($1, $2, $3, $4)`,
				s.name, s.hours, s.semester, s.teacherID); err != nil {
				return err
			}
		}

		users := []struct {
			username, password, role string
			studentID, teacherID     *int64
		}{
			{"admin", "admin123", "admin", nil, nil},
			{"teacher", "teacher123", "teacher", nil, ptrInt64(1)},
			{"student", "student123", "student", ptrInt64(1), nil},
		}
		for _, u := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(`INSERT INTO users (username, password, role, student_id, teacher_id) VALUES ($1, $2, $3, $4, $5)`,
				u.username, string(hash), u.role, u.studentID, u.teacherID); err != nil {
				return err
			}
		}

		schedule := []struct {
			groupID, subjectID, teacherID int64
			day                           int
			start, end, room, lessonType  string
		}{
			{1, 1, 1, 1, "09:00", "10:30", "201", "lecture"},
			{1, 2, 2, 1, "10:45", "12:15", "202", "practice"},
			{1, 3, 3, 2, "09:00", "10:30", "301", "lecture"},
			{1, 1, 1, 3, "12:30", "14:00", "k-105", "lab"},
			{2, 3, 3, 1, "10:45", "12:15", "301", "lecture"},
			{2, 1, 1, 2, "09:00", "10:30", "k-105", "practice"},
			{3, 4, 1, 4, "10:45", "12:15", "203", "lecture"},
		}
		for _, l := range schedule {
			if _, err := tx.Exec(`INSERT INTO schedule (group_id, subject_id, teacher_id, day_of_week, start_time, end_time, classroom, lesson_type)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				l.groupID, l.subjectID, l.teacherID, l.day, l.start, l.end, l.room, l.lessonType); err != nil {
				return err
			}
		}

		grades := []struct {
			studentID, subjectID, teacherID int64
			grade                           int
			gradeType, date                 string
		}{
			{1, 1, 1, 5, "exam", "2025-09-15"},
			{1, 2, 2, 4, "coursework", "2025-09-18"},
			{2, 1, 1, 4, "practice", "2025-09-15"},
			{2, 3, 3, 5, "credit", "2025-06-10"},
			{3, 3, 3, 3, "exam", "2025-06-20"},
		}
		for _, g := range grades {
			if _, err := tx.Exec(`INSERT INTO grades (student_id, subject_id, grade, grade_type, date, teacher_id)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				g.studentID, g.subjectID, g.grade, g.gradeType, g.date, g.teacherID); err != nil {
				return err
			}
		}

		attendance := []struct {
			studentID, subjectID, teacherID int64
			date, status                    string
		}{
			{1, 1, 1, "2025-09-15", "present"},
			{2, 1, 1, "2025-09-15", "late"},
			{1, 2, 2, "2025-09-18", "present"},
			{2, 2, 2, "2025-09-18", "absent"},
		}
		for _, a := range attendance {
			if _, err := tx.Exec(`INSERT INTO attendance (student_id, subject_id, teacher_id, date, status)
				VALUES ($1, $2, $3, $4, $5)`,
				a.studentID, a.subjectID, a.teacherID, a.date, a.status); err != nil {
				return err
			}
		}

		session := []struct {
			subjectID, groupID, teacherID int64
			eventType, date, start, end   string
		}{
			{3, 1, 3, "exam", "2026-01-12", "09:00", "12:00"},
			{1, 1, 1, "credit", "2026-01-08", "10:00", "13:00"},
			{2, 1, 2, "consultation", "2026-01-10", "14:00", "15:30"},
		}
		for _, e := range session {
			if _, err := tx.Exec(`INSERT INTO session_schedule (subject_id, group_id, teacher_id, event_type, event_date, start_time, end_time)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.subjectID, e.groupID, e.teacherID, e.eventType, e.date, e.start, e.end); err != nil {
				return err
			}
		}

		return nil
	})
}

func ptrInt64(v int64) *int64 { return &v }
