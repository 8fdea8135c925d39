package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dates are stored as TEXT in YYYY-MM-DD form so the same statements and
// queries run against both Postgres and the SQLite database used in tests.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS groups (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		course INTEGER NOT NULL,
		specialization TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		group_id INTEGER REFERENCES groups(id),
		student_card TEXT UNIQUE NOT NULL,
		email TEXT,
		phone TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS teachers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		department TEXT,
		position TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS subjects (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		hours INTEGER,
		semester INTEGER,
		teacher_id INTEGER REFERENCES teachers(id),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS grades (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students(id),
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		grade INTEGER CHECK (grade BETWEEN 2 AND 5 OR grade IS NULL),
		is_pass INTEGER CHECK (is_pass IN (0, 1) OR is_pass IS NULL),
		grade_type TEXT NOT NULL CHECK (grade_type IN ('exam', 'test', 'credit', 'coursework', 'practice')),
		date TEXT NOT NULL,
		teacher_id INTEGER NOT NULL REFERENCES teachers(id),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (student_id, subject_id, grade_type)
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('student', 'teacher', 'admin')),
		student_id INTEGER REFERENCES students(id),
		teacher_id INTEGER REFERENCES teachers(id),
		email TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS schedule (
		id SERIAL PRIMARY KEY,
		group_id INTEGER NOT NULL REFERENCES groups(id),
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		teacher_id INTEGER NOT NULL REFERENCES teachers(id),
		day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 1 AND 6),
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		classroom TEXT,
		lesson_type TEXT CHECK (lesson_type IN ('lecture', 'practice', 'lab', 'seminar')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students(id),
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		teacher_id INTEGER NOT NULL REFERENCES teachers(id),
		date TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('present', 'absent', 'late', 'sick', 'excused')),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (student_id, subject_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS session_schedule (
		id SERIAL PRIMARY KEY,
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		group_id INTEGER NOT NULL REFERENCES groups(id),
		teacher_id INTEGER NOT NULL REFERENCES teachers(id),
		event_type TEXT NOT NULL CHECK (event_type IN ('exam', 'test', 'credit', 'consultation')),
		event_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		classroom TEXT,
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// RunMigrations creates all tables that do not exist yet.
func RunMigrations(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		s := stmt
		if db.DriverName() == "sqlite3" {
			s = translateSQLite(s)
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

var sqliteReplacer = strings.NewReplacer(
	"SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
	"TIMESTAMP", "DATETIME",
)

func translateSQLite(stmt string) string {
	return sqliteReplacer.Replace(stmt)
}
