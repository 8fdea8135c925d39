package models

import "time"

// Grade is one assessment result. At most one row exists per
// (student_id, subject_id, grade_type); re-submitting the same key
// updates the row in place. Exactly one of Grade/IsPass is set,
// depending on the grade type.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	SubjectID int64     `json:"subject_id" db:"subject_id"`
	Grade     *int      `json:"grade,omitempty" db:"grade"`
	IsPass    *int      `json:"is_pass,omitempty" db:"is_pass"`
	GradeType GradeType `json:"grade_type" db:"grade_type"`
	Date      string    `json:"date" db:"date"`
	TeacherID int64     `json:"teacher_id" db:"teacher_id"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudentGrade is a grade row with subject and teacher names joined in.
type StudentGrade struct {
	Grade
	SubjectName string  `json:"subject_name" db:"subject_name"`
	TeacherName *string `json:"teacher_name,omitempty" db:"teacher_name"`
}

// GradebookRow is one line of the per-group, per-subject roster: every
// student of the group with their (possibly absent) grade row.
type GradebookRow struct {
	StudentID   int64   `json:"student_id" db:"student_id"`
	StudentName string  `json:"student_name" db:"student_name"`
	StudentCard string  `json:"student_card" db:"student_card"`
	Grade       *int    `json:"grade,omitempty" db:"grade"`
	IsPass      *int    `json:"is_pass,omitempty" db:"is_pass"`
	GradeType   *string `json:"grade_type,omitempty" db:"grade_type"`
	Date        *string `json:"date,omitempty" db:"date"`
	TeacherID   *int64  `json:"teacher_id,omitempty" db:"teacher_id"`
}

// Gradebook is the roster response for one group and subject.
type Gradebook struct {
	Group    string         `json:"group"`
	Subject  string         `json:"subject"`
	Students []GradebookRow `json:"students"`
}

// UpsertResult reports the outcome of a grade submission.
type UpsertResult struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}
