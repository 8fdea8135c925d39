package models

// Role defines the access level of a user account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// GradeType defines the category of an assessment. It governs which of
// the grade/is_pass fields is authoritative for a grades row.
type GradeType string

const (
	GradeExam       GradeType = "exam"
	GradeTest       GradeType = "test"
	GradeCredit     GradeType = "credit"
	GradeCoursework GradeType = "coursework"
	GradePractice   GradeType = "practice"
)

func (t GradeType) Valid() bool {
	switch t {
	case GradeExam, GradeTest, GradeCredit, GradeCoursework, GradePractice:
		return true
	}
	return false
}

// UsesPassFlag reports whether this assessment type is recorded as
// pass/fail rather than a numeric score.
func (t GradeType) UsesPassFlag() bool {
	return t == GradeTest
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Sick    AttendanceStatus = "sick"
	Excused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late, Sick, Excused:
		return true
	}
	return false
}

// LessonType defines the kind of a weekly schedule slot.
type LessonType string

const (
	Lecture  LessonType = "lecture"
	Practice LessonType = "practice"
	Lab      LessonType = "lab"
	Seminar  LessonType = "seminar"
)

// SessionEventType defines the kind of a dated session-schedule event.
type SessionEventType string

const (
	SessionExam         SessionEventType = "exam"
	SessionTest         SessionEventType = "test"
	SessionCredit       SessionEventType = "credit"
	SessionConsultation SessionEventType = "consultation"
)

func (t SessionEventType) Valid() bool {
	switch t {
	case SessionExam, SessionTest, SessionCredit, SessionConsultation:
		return true
	}
	return false
}
