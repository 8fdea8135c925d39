package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/models"
)

func TestReplaceDayAttendance(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, studentB, teacherID, subjectID := insertFixtures(t, db)

	saved, skipped, err := ReplaceDayAttendance(db, "2025-09-15", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{
			{StudentID: studentA, Status: models.Present},
			{StudentID: studentB, Status: models.Late},
		})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)
	assert.Equal(t, 0, skipped)

	// Re-submitting the day replaces it, not appends.
	saved, skipped, err = ReplaceDayAttendance(db, "2025-09-15", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{
			{StudentID: studentA, Status: models.Sick, Notes: strPtr("справка")},
		})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	assert.Equal(t, 0, skipped)

	records, err := ListStudentAttendance(db, studentA, "", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Sick, records[0].Status)

	records, err = ListStudentAttendance(db, studentB, "", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReplaceDayAttendanceSkipsForeignStudents(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	other := &models.Group{Name: "П-22", Course: 1}
	require.NoError(t, CreateGroup(db, other))
	outsider := &models.Student{Name: "Козлова Мария", GroupID: &other.ID, StudentCard: "СТ-099"}
	require.NoError(t, CreateStudent(db, outsider))

	saved, skipped, err := ReplaceDayAttendance(db, "2025-09-16", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{
			{StudentID: studentA, Status: models.Present},
			{StudentID: outsider.ID, Status: models.Present},
		})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)
	assert.Equal(t, 1, skipped)

	records, err := ListStudentAttendance(db, outsider.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReplaceDayAttendanceLastEntryWinsForDuplicates(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	saved, _, err := ReplaceDayAttendance(db, "2025-09-17", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{
			{StudentID: studentA, Status: models.Absent},
			{StudentID: studentA, Status: models.Excused},
		})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	records, err := ListStudentAttendance(db, studentA, "", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Excused, records[0].Status)
}

func TestReplaceDayAttendanceScopedToDateAndSubject(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	_, _, err := ReplaceDayAttendance(db, "2025-09-15", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Present}})
	require.NoError(t, err)

	// Another date for the same subject is untouched by a re-submit.
	_, _, err = ReplaceDayAttendance(db, "2025-09-16", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Absent}})
	require.NoError(t, err)

	records, err := ListStudentAttendance(db, studentA, "", "")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Range filters narrow the history.
	records, err = ListStudentAttendance(db, studentA, "2025-09-16", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-09-16", records[0].Date)
}

func TestStudentAttendanceStats(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, _, teacherID, subjectID := insertFixtures(t, db)

	_, _, err := ReplaceDayAttendance(db, "2025-09-15", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Present}})
	require.NoError(t, err)
	_, _, err = ReplaceDayAttendance(db, "2025-09-16", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Present}})
	require.NoError(t, err)
	_, _, err = ReplaceDayAttendance(db, "2025-09-17", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Absent}})
	require.NoError(t, err)

	counts, err := StudentAttendanceStats(db, studentA)
	require.NoError(t, err)

	byStatus := map[string]int{}
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, 2, byStatus["present"])
	assert.Equal(t, 1, byStatus["absent"])
}

func TestGetGroupAttendanceRoster(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, studentB, teacherID, subjectID := insertFixtures(t, db)

	_, _, err := ReplaceDayAttendance(db, "2025-09-15", subjectID, groupID, teacherID,
		[]models.AttendanceRecord{{StudentID: studentA, Status: models.Present}})
	require.NoError(t, err)

	rows, err := GetGroupAttendance(db, groupID, subjectID, "2025-09-15")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[int64]models.AttendanceRosterRow{}
	for _, row := range rows {
		byID[row.StudentID] = row
	}
	require.NotNil(t, byID[studentA].Status)
	assert.Equal(t, "present", *byID[studentA].Status)
	assert.Nil(t, byID[studentB].Status)
}
