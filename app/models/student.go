package models

import "time"

// Student belongs to at most one group.
type Student struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required"`
	GroupID     *int64    `json:"group_id,omitempty" db:"group_id"`
	StudentCard string    `json:"student_card" db:"student_card" validate:"required"`
	Email       *string   `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// StudentWithGroup is the list/detail projection with the group name joined in.
type StudentWithGroup struct {
	Student
	GroupName *string `json:"group_name,omitempty" db:"group_name"`
}

type Teacher struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name" validate:"required"`
	Email      *string   `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Department *string   `json:"department,omitempty" db:"department"`
	Position   *string   `json:"position,omitempty" db:"position"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Group owns zero or more students.
type Group struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name" validate:"required"`
	Course         int       `json:"course" db:"course" validate:"required,min=1,max=6"`
	Specialization *string   `json:"specialization,omitempty" db:"specialization"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type Subject struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Hours     *int      `json:"hours,omitempty" db:"hours"`
	Semester  *int      `json:"semester,omitempty" db:"semester"`
	TeacherID *int64    `json:"teacher_id,omitempty" db:"teacher_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubjectWithTeacher is the list projection with the teacher name joined in.
type SubjectWithTeacher struct {
	Subject
	TeacherName *string `json:"teacher_name,omitempty" db:"teacher_name"`
}
