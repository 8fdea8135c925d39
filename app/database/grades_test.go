package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/models"
)

func TestUpsertGradeCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	_, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	first := &models.Grade{
		StudentID: studentA,
		SubjectID: subjectID,
		Grade:     intPtr(4),
		GradeType: models.GradeExam,
		Date:      "2025-06-20",
		TeacherID: teacherID,
	}
	res, err := UpsertGrade(db, first)
	require.NoError(t, err)
	assert.True(t, res.Created)

	second := &models.Grade{
		StudentID: studentA,
		SubjectID: subjectID,
		Grade:     intPtr(5),
		GradeType: models.GradeExam,
		Date:      "2025-06-21",
		TeacherID: teacherID,
	}
	res2, err := UpsertGrade(db, second)
	require.NoError(t, err)
	assert.False(t, res2.Created)
	assert.Equal(t, res.ID, res2.ID)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM grades WHERE student_id = ? AND subject_id = ? AND grade_type = ?`,
		studentA, subjectID, models.GradeExam))
	assert.Equal(t, 1, count)

	stored, err := GetGradeByID(db, res.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Grade)
	assert.Equal(t, 5, *stored.Grade)
	assert.Equal(t, "2025-06-21", stored.Date)
}

func TestUpsertGradeDifferentTypesCoexist(t *testing.T) {
	db := newTestDB(t)
	_, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	exam := &models.Grade{
		StudentID: studentA, SubjectID: subjectID,
		Grade: intPtr(4), GradeType: models.GradeExam,
		Date: "2025-06-20", TeacherID: teacherID,
	}
	_, err := UpsertGrade(db, exam)
	require.NoError(t, err)

	test := &models.Grade{
		StudentID: studentA, SubjectID: subjectID,
		IsPass: intPtr(1), GradeType: models.GradeTest,
		Date: "2025-06-22", TeacherID: teacherID,
	}
	res, err := UpsertGrade(db, test)
	require.NoError(t, err)
	assert.True(t, res.Created)

	grades, err := ListStudentGrades(db, studentA)
	require.NoError(t, err)
	assert.Len(t, grades, 2)
}

func TestGetGradebookIncludesUngradedStudents(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, studentB, teacherID, subjectID := insertFixtures(t, db)

	g := &models.Grade{
		StudentID: studentA, SubjectID: subjectID,
		Grade: intPtr(5), GradeType: models.GradePractice,
		Date: "2025-09-15", TeacherID: teacherID,
	}
	_, err := UpsertGrade(db, g)
	require.NoError(t, err)

	book, err := GetGradebook(db, groupID, subjectID)
	require.NoError(t, err)
	assert.Equal(t, "ИТ-21", book.Group)
	assert.Equal(t, "Базы данных", book.Subject)
	require.Len(t, book.Students, 2)

	byID := map[int64]models.GradebookRow{}
	for _, row := range book.Students {
		byID[row.StudentID] = row
	}
	require.NotNil(t, byID[studentA].Grade)
	assert.Equal(t, 5, *byID[studentA].Grade)
	assert.Nil(t, byID[studentB].Grade)
	assert.Nil(t, byID[studentB].GradeType)
}

func TestDeleteGrade(t *testing.T) {
	db := newTestDB(t)
	_, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	g := &models.Grade{
		StudentID: studentA, SubjectID: subjectID,
		Grade: intPtr(3), GradeType: models.GradeCredit,
		Date: "2025-06-10", TeacherID: teacherID,
	}
	res, err := UpsertGrade(db, g)
	require.NoError(t, err)

	found, err := DeleteGrade(db, res.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = DeleteGrade(db, res.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
