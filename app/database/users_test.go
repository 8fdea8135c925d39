package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanTom52/zachetka/app/models"
)

func TestUserLifecycle(t *testing.T) {
	db := newTestDB(t)
	_, studentA, _, _, _ := insertFixtures(t, db)

	user := &models.User{
		Username:  "ivanov",
		Password:  "hash",
		Role:      models.RoleStudent,
		StudentID: &studentA,
	}
	require.NoError(t, CreateUser(db, user))
	require.NotZero(t, user.ID)

	got, err := GetUserByUsername(db, "ivanov")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, got.IsActive)

	// The profile resolves the linked student's name.
	profile, err := GetUserProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван", profile.Name)

	found, err := DeactivateUser(db, user.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Deactivated accounts are invisible to every lookup.
	_, err = GetUserByUsername(db, "ivanov")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	_, err = GetUserByID(db, user.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	found, err = DeactivateUser(db, user.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdminProfileFallsBackToUsername(t *testing.T) {
	db := newTestDB(t)

	user := &models.User{Username: "admin", Password: "hash", Role: models.RoleAdmin}
	require.NoError(t, CreateUser(db, user))

	profile, err := GetUserProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Name)
}
