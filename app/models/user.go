package models

import "time"

// User is an account that can log in. It optionally links to exactly one
// student or one teacher record.
type User struct {
	ID        int64      `json:"id" db:"id"`
	Username  string     `json:"username" db:"username" validate:"required,min=3"`
	Password  string     `json:"-" db:"password"`
	Role      Role       `json:"role" db:"role" validate:"required,oneof=student teacher admin"`
	StudentID *int64     `json:"student_id,omitempty" db:"student_id"`
	TeacherID *int64     `json:"teacher_id,omitempty" db:"teacher_id"`
	Email     *string    `json:"email,omitempty" db:"email"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// UserProfile is the login/me projection of a user with the linked
// student or teacher name resolved.
type UserProfile struct {
	ID        int64   `json:"id" db:"id"`
	Username  string  `json:"username" db:"username"`
	Role      Role    `json:"role" db:"role"`
	Name      string  `json:"name" db:"name"`
	Email     *string `json:"email,omitempty" db:"email"`
	StudentID *int64  `json:"student_id,omitempty" db:"student_id"`
	TeacherID *int64  `json:"teacher_id,omitempty" db:"teacher_id"`
}
