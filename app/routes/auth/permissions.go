package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/models"
)

// Permission names a capability. Routes declare the permission they need
// and roles map to permission sets; handlers never check roles directly.
type Permission string

const (
	ViewStudents     Permission = "view_students"
	ManageStudents   Permission = "manage_students"
	ViewGroups       Permission = "view_groups"
	ManageGroups     Permission = "manage_groups"
	ViewSubjects     Permission = "view_subjects"
	ManageSubjects   Permission = "manage_subjects"
	ViewGrades       Permission = "view_grades"
	ManageGrades     Permission = "manage_grades"
	ViewAttendance   Permission = "view_attendance"
	ManageAttendance Permission = "manage_attendance"
	ViewSchedule     Permission = "view_schedule"
	ManageSchedule   Permission = "manage_schedule"
	ViewTeachers     Permission = "view_teachers"
	ManageTeachers   Permission = "manage_teachers"
	ViewStatistics   Permission = "view_statistics"
	ManageUsers      Permission = "manage_users"
)

// Students hold no table-wide permissions; they reach their own records
// through SelfStudentOrPermission.
var rolePermissions = map[models.Role][]Permission{
	models.RoleAdmin: {
		ViewStudents, ManageStudents,
		ViewGroups, ManageGroups,
		ViewSubjects, ManageSubjects,
		ViewGrades, ManageGrades,
		ViewAttendance, ManageAttendance,
		ViewSchedule, ManageSchedule,
		ViewTeachers, ManageTeachers,
		ViewStatistics, ManageUsers,
	},
	models.RoleTeacher: {
		ViewStudents, ViewGroups, ViewSubjects, ViewGrades,
		ViewAttendance, ViewSchedule, ViewTeachers, ViewStatistics,
		ManageGrades, ManageAttendance, ManageSchedule,
	},
	models.RoleStudent: {},
}

func HasPermission(role models.Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// RequirePermission rejects the request with 403 unless the caller's
// role grants the permission. Must run after AuthMiddleware.
func RequirePermission(perm Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)
		if claims == nil {
			return apperr.Unauthorized("authorization token required")
		}
		if !HasPermission(claims.Role, perm) {
			return apperr.Forbidden("insufficient permissions")
		}
		return c.Next()
	}
}

// SelfStudentOrPermission lets a student through only when the path
// parameter matches their own linked student id; anyone else needs the
// permission. Used on the per-student read endpoints.
func SelfStudentOrPermission(param string, perm Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)
		if claims == nil {
			return apperr.Unauthorized("authorization token required")
		}

		if claims.Role == models.RoleStudent {
			id, err := strconv.ParseInt(c.Params(param), 10, 64)
			if err != nil {
				return apperr.Validation("invalid student id")
			}
			if claims.StudentID == nil || *claims.StudentID != id {
				return apperr.Forbidden("access denied")
			}
			return c.Next()
		}

		if !HasPermission(claims.Role, perm) {
			return apperr.Forbidden("insufficient permissions")
		}
		return c.Next()
	}
}
