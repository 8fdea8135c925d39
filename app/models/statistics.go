package models

// Overview is the system-wide statistics snapshot.
type Overview struct {
	Students     int     `json:"students" db:"students"`
	Teachers     int     `json:"teachers" db:"teachers"`
	Subjects     int     `json:"subjects" db:"subjects"`
	Grades       int     `json:"grades" db:"grades"`
	Groups       int     `json:"groups" db:"groups"`
	AverageGrade float64 `json:"averageGrade" db:"average_grade"`
}

// GroupSummary aggregates one group's size and performance.
type GroupSummary struct {
	ID             int64    `json:"id" db:"id"`
	GroupName      string   `json:"group_name" db:"group_name"`
	Specialization *string  `json:"specialization,omitempty" db:"specialization"`
	StudentCount   int      `json:"student_count" db:"student_count"`
	AverageGrade   *float64 `json:"average_grade,omitempty" db:"average_grade"`
	SuccessRate    float64  `json:"success_rate" db:"success_rate"`
}

// GroupSubjectStats is the per-subject breakdown for one group.
type GroupSubjectStats struct {
	SubjectName       string   `json:"subject_name" db:"subject_name"`
	TotalStudents     int      `json:"total_students" db:"total_students"`
	TotalGrades       int      `json:"total_grades" db:"total_grades"`
	AverageGrade      *float64 `json:"average_grade,omitempty" db:"average_grade"`
	ExcellentCount    int      `json:"excellent_count" db:"excellent_count"`
	GoodCount         int      `json:"good_count" db:"good_count"`
	SatisfactoryCount int      `json:"satisfactory_count" db:"satisfactory_count"`
	FailCount         int      `json:"fail_count" db:"fail_count"`
}

// SubjectSummary ranks one subject by its grade average.
type SubjectSummary struct {
	ID           int64    `json:"id" db:"id"`
	SubjectName  string   `json:"subject_name" db:"subject_name"`
	Hours        *int     `json:"hours,omitempty" db:"hours"`
	Semester     *int     `json:"semester,omitempty" db:"semester"`
	TeacherName  *string  `json:"teacher_name,omitempty" db:"teacher_name"`
	AverageGrade *float64 `json:"average_grade,omitempty" db:"average_grade"`
	GradeCount   int      `json:"grade_count" db:"grade_count"`
}

// GradeBucket is one bar of the grade distribution.
type GradeBucket struct {
	Grade      int     `json:"grade" db:"grade"`
	Count      int     `json:"count" db:"count"`
	Percentage float64 `json:"percentage" db:"percentage"`
}

// MonthlyAverage is the grade average for one calendar month.
type MonthlyAverage struct {
	Month        string   `json:"month" db:"month"`
	AverageGrade *float64 `json:"average_grade,omitempty" db:"average_grade"`
	GradeCount   int      `json:"grade_count" db:"grade_count"`
}

// TeacherStats aggregates one teacher's grading activity.
type TeacherStats struct {
	TotalStudents int      `json:"total_students" db:"total_students"`
	TotalSubjects int      `json:"total_subjects" db:"total_subjects"`
	TotalGrades   int      `json:"total_grades" db:"total_grades"`
	AverageGrade  *float64 `json:"average_grade,omitempty" db:"average_grade"`
}
