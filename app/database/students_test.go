package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/models"
)

func TestListStudentsFiltersAndPagination(t *testing.T) {
	db := newTestDB(t)
	groupID, _, _, _, _ := insertFixtures(t, db)

	other := &models.Group{Name: "П-22", Course: 1}
	require.NoError(t, CreateGroup(db, other))
	s := &models.Student{Name: "Козлова Мария", GroupID: &other.ID, StudentCard: "СТ-003"}
	require.NoError(t, CreateStudent(db, s))

	// No filter: everything, with the total reflecting the full set.
	students, total, err := ListStudents(db, StudentFilters{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, students, 3)

	// Group filter.
	students, total, err = ListStudents(db, StudentFilters{GroupID: groupID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, st := range students {
		require.NotNil(t, st.GroupName)
		assert.Equal(t, "ИТ-21", *st.GroupName)
	}

	// Search matches on name substring and the card number.
	students, total, err = ListStudents(db, StudentFilters{Search: "Козлова", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	students, total, err = ListStudents(db, StudentFilters{Search: "СТ-001", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Pagination: one per page, total unchanged.
	students, total, err = ListStudents(db, StudentFilters{Limit: 1, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, students, 1)

	students, _, err = ListStudents(db, StudentFilters{Limit: 1, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestStudentCRUD(t *testing.T) {
	db := newTestDB(t)
	groupID, studentA, _, _, _ := insertFixtures(t, db)

	got, err := GetStudentByID(db, studentA)
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван", got.Name)

	got.Student.Email = strPtr("ivanov@college.edu")
	found, err := UpdateStudent(db, &got.Student)
	require.NoError(t, err)
	assert.True(t, found)

	again, err := GetStudentByID(db, studentA)
	require.NoError(t, err)
	require.NotNil(t, again.Email)
	assert.Equal(t, "ivanov@college.edu", *again.Email)

	found, err = DeleteStudent(db, studentA)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = GetStudentByID(db, studentA)
	assert.Error(t, err)

	byGroup, err := GetStudentsByGroup(db, groupID)
	require.NoError(t, err)
	assert.Len(t, byGroup, 1)
}
