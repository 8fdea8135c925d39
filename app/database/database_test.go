package database

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/models"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))
	return db
}

// insertFixtures creates one group with two students, one teacher and
// one subject, returning their ids in insertion order.
func insertFixtures(t *testing.T, db *sqlx.DB) (groupID, studentA, studentB, teacherID, subjectID int64) {
	t.Helper()

	group := &models.Group{Name: "ИТ-21", Course: 2}
	require.NoError(t, CreateGroup(db, group))
	groupID = group.ID

	s1 := &models.Student{Name: "Иванов Иван", GroupID: &groupID, StudentCard: "СТ-001"}
	require.NoError(t, CreateStudent(db, s1))
	s2 := &models.Student{Name: "Петрова Анна", GroupID: &groupID, StudentCard: "СТ-002"}
	require.NoError(t, CreateStudent(db, s2))

	teacher := &models.Teacher{Name: "Сидорова Елена"}
	require.NoError(t, CreateTeacher(db, teacher))
	teacherID = teacher.ID

	subject := &models.Subject{Name: "Базы данных", TeacherID: &teacherID}
	require.NoError(t, CreateSubject(db, subject))

	return groupID, s1.ID, s2.ID, teacherID, subject.ID
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }
