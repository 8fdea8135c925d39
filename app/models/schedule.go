package models

import "time"

// ScheduleEntry is a recurring weekly lesson slot for a group.
type ScheduleEntry struct {
	ID         int64       `json:"id" db:"id"`
	GroupID    int64       `json:"group_id" db:"group_id"`
	SubjectID  int64       `json:"subject_id" db:"subject_id"`
	TeacherID  int64       `json:"teacher_id" db:"teacher_id"`
	DayOfWeek  int         `json:"day_of_week" db:"day_of_week"`
	StartTime  string      `json:"start_time" db:"start_time"`
	EndTime    string      `json:"end_time" db:"end_time"`
	Classroom  *string     `json:"classroom,omitempty" db:"classroom"`
	LessonType *LessonType `json:"lesson_type,omitempty" db:"lesson_type"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// ScheduleLesson is a schedule entry with subject/teacher/group names.
type ScheduleLesson struct {
	ScheduleEntry
	SubjectName string  `json:"subject_name" db:"subject_name"`
	TeacherName *string `json:"teacher_name,omitempty" db:"teacher_name"`
	GroupName   *string `json:"group_name,omitempty" db:"group_name"`
}

// SessionEvent is a dated exam/test/credit/consultation event, as
// opposed to the recurring weekly schedule.
type SessionEvent struct {
	ID        int64            `json:"id" db:"id"`
	SubjectID int64            `json:"subject_id" db:"subject_id"`
	GroupID   int64            `json:"group_id" db:"group_id"`
	TeacherID int64            `json:"teacher_id" db:"teacher_id"`
	EventType SessionEventType `json:"event_type" db:"event_type"`
	EventDate string           `json:"event_date" db:"event_date"`
	StartTime string           `json:"start_time" db:"start_time"`
	EndTime   string           `json:"end_time" db:"end_time"`
	Classroom *string          `json:"classroom,omitempty" db:"classroom"`
	Notes     *string          `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// SessionEventDetails is a session event with names joined in.
type SessionEventDetails struct {
	SessionEvent
	SubjectName string  `json:"subject_name" db:"subject_name"`
	GroupName   string  `json:"group_name" db:"group_name"`
	TeacherName *string `json:"teacher_name,omitempty" db:"teacher_name"`
}
