package models

import "time"

// Attendance is one student's presence record for a subject on a date.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"student_id" db:"student_id"`
	SubjectID int64            `json:"subject_id" db:"subject_id"`
	TeacherID int64            `json:"teacher_id" db:"teacher_id"`
	Date      string           `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
	Notes     *string          `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// StudentAttendance is an attendance row with subject and teacher names.
type StudentAttendance struct {
	Attendance
	SubjectName string  `json:"subject_name" db:"subject_name"`
	TeacherName *string `json:"teacher_name,omitempty" db:"teacher_name"`
}

// AttendanceRosterRow is one line of the per-group attendance view for a
// date: every student of the group with their (possibly absent) record.
type AttendanceRosterRow struct {
	StudentID   int64   `json:"student_id" db:"student_id"`
	StudentName string  `json:"student_name" db:"student_name"`
	StudentCard string  `json:"student_card" db:"student_card"`
	Status      *string `json:"status,omitempty" db:"status"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
	Date        *string `json:"date,omitempty" db:"date"`
}

// AttendanceRecord is one entry of a bulk day submission.
type AttendanceRecord struct {
	StudentID int64            `json:"student_id" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late sick excused"`
	Notes     *string          `json:"notes,omitempty"`
}

// StatusCount is one bucket of a per-status attendance aggregate.
type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}
