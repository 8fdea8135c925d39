package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FanTom52/zachetka/app/models"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		perm Permission
		want bool
	}{
		{"admin manages users", models.RoleAdmin, ManageUsers, true},
		{"admin manages students", models.RoleAdmin, ManageStudents, true},
		{"teacher views students", models.RoleTeacher, ViewStudents, true},
		{"teacher manages grades", models.RoleTeacher, ManageGrades, true},
		{"teacher manages attendance", models.RoleTeacher, ManageAttendance, true},
		{"teacher manages schedule", models.RoleTeacher, ManageSchedule, true},
		{"teacher cannot manage students", models.RoleTeacher, ManageStudents, false},
		{"teacher cannot manage users", models.RoleTeacher, ManageUsers, false},
		{"teacher cannot manage subjects", models.RoleTeacher, ManageSubjects, false},
		{"student has no table permissions", models.RoleStudent, ViewStudents, false},
		{"student cannot view grades table", models.RoleStudent, ViewGrades, false},
		{"unknown role has nothing", models.Role("ghost"), ViewStudents, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.perm))
		})
	}
}

func TestAdminHasEveryPermission(t *testing.T) {
	all := []Permission{
		ViewStudents, ManageStudents,
		ViewGroups, ManageGroups,
		ViewSubjects, ManageSubjects,
		ViewGrades, ManageGrades,
		ViewAttendance, ManageAttendance,
		ViewSchedule, ManageSchedule,
		ViewTeachers, ManageTeachers,
		ViewStatistics, ManageUsers,
	}
	for _, perm := range all {
		assert.True(t, HasPermission(models.RoleAdmin, perm), string(perm))
	}
}
