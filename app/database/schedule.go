package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

const scheduleSelect = `
	SELECT sch.id, sch.group_id, sch.subject_id, sch.teacher_id, sch.day_of_week,
	       sch.start_time, sch.end_time, sch.classroom, sch.lesson_type, sch.created_at,
	       sub.name AS subject_name,
	       t.name AS teacher_name,
	       gr.name AS group_name
	FROM schedule sch
	JOIN subjects sub ON sch.subject_id = sub.id
	LEFT JOIN teachers t ON sch.teacher_id = t.id
	LEFT JOIN groups gr ON sch.group_id = gr.id`

// GetGroupSchedule returns a group's weekly timetable ordered by day
// and start time.
func GetGroupSchedule(db *sqlx.DB, groupID int64) ([]models.ScheduleLesson, error) {
	lessons := []models.ScheduleLesson{}
	err := db.Select(&lessons, scheduleSelect+`
		WHERE sch.group_id = $1
		ORDER BY sch.day_of_week, sch.start_time`, groupID)
	return lessons, err
}

// GetStudentSchedule returns the weekly timetable of the student's own
// group.
func GetStudentSchedule(db *sqlx.DB, studentID int64) ([]models.ScheduleLesson, error) {
	lessons := []models.ScheduleLesson{}
	err := db.Select(&lessons, scheduleSelect+`
		WHERE sch.group_id = (SELECT group_id FROM students WHERE id = $1)
		ORDER BY sch.day_of_week, sch.start_time`, studentID)
	return lessons, err
}

// GetTeacherSchedule returns every weekly slot a teacher leads.
func GetTeacherSchedule(db *sqlx.DB, teacherID int64) ([]models.ScheduleLesson, error) {
	lessons := []models.ScheduleLesson{}
	err := db.Select(&lessons, scheduleSelect+`
		WHERE sch.teacher_id = $1
		ORDER BY sch.day_of_week, sch.start_time`, teacherID)
	return lessons, err
}

func CreateScheduleEntry(db *sqlx.DB, e *models.ScheduleEntry) (int64, error) {
	var id int64
	err := db.QueryRowx(`
		INSERT INTO schedule (group_id, subject_id, teacher_id, day_of_week, start_time, end_time, classroom, lesson_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		e.GroupID, e.SubjectID, e.TeacherID, e.DayOfWeek, e.StartTime, e.EndTime, e.Classroom, e.LessonType,
	).Scan(&id)
	return id, err
}

func UpdateScheduleEntry(db *sqlx.DB, e *models.ScheduleEntry) (bool, error) {
	res, err := db.Exec(`
		UPDATE schedule
		SET group_id = $1, subject_id = $2, teacher_id = $3, day_of_week = $4,
		    start_time = $5, end_time = $6, classroom = $7, lesson_type = $8
		WHERE id = $9`,
		e.GroupID, e.SubjectID, e.TeacherID, e.DayOfWeek, e.StartTime, e.EndTime, e.Classroom, e.LessonType, e.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteScheduleEntry(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM schedule WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

const sessionSelect = `
	SELECT se.id, se.subject_id, se.group_id, se.teacher_id, se.event_type, se.event_date,
	       se.start_time, se.end_time, se.classroom, se.notes, se.created_at,
	       sub.name AS subject_name,
	       gr.name AS group_name,
	       t.name AS teacher_name
	FROM session_schedule se
	JOIN subjects sub ON se.subject_id = sub.id
	JOIN groups gr ON se.group_id = gr.id
	LEFT JOIN teachers t ON se.teacher_id = t.id`

// ListSessionEvents returns all session events, optionally narrowed to
// one group, in chronological order.
func ListSessionEvents(db *sqlx.DB, groupID *int64) ([]models.SessionEventDetails, error) {
	events := []models.SessionEventDetails{}
	if groupID != nil {
		err := db.Select(&events, sessionSelect+`
			WHERE se.group_id = $1
			ORDER BY se.event_date, se.start_time`, *groupID)
		return events, err
	}
	err := db.Select(&events, sessionSelect+`
		ORDER BY se.event_date, se.start_time`)
	return events, err
}

// GetStudentSessionEvents returns the session events of the student's
// own group.
func GetStudentSessionEvents(db *sqlx.DB, studentID int64) ([]models.SessionEventDetails, error) {
	events := []models.SessionEventDetails{}
	err := db.Select(&events, sessionSelect+`
		WHERE se.group_id = (SELECT group_id FROM students WHERE id = $1)
		ORDER BY se.event_date, se.start_time`, studentID)
	return events, err
}

func GetTeacherSessionEvents(db *sqlx.DB, teacherID int64) ([]models.SessionEventDetails, error) {
	events := []models.SessionEventDetails{}
	err := db.Select(&events, sessionSelect+`
		WHERE se.teacher_id = $1
		ORDER BY se.event_date, se.start_time`, teacherID)
	return events, err
}

func CreateSessionEvent(db *sqlx.DB, e *models.SessionEvent) (int64, error) {
	var id int64
	err := db.QueryRowx(`
		INSERT INTO session_schedule (subject_id, group_id, teacher_id, event_type, event_date, start_time, end_time, classroom, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		e.SubjectID, e.GroupID, e.TeacherID, e.EventType, e.EventDate, e.StartTime, e.EndTime, e.Classroom, e.Notes,
	).Scan(&id)
	return id, err
}

func UpdateSessionEvent(db *sqlx.DB, e *models.SessionEvent) (bool, error) {
	res, err := db.Exec(`
		UPDATE session_schedule
		SET subject_id = $1, group_id = $2, teacher_id = $3, event_type = $4,
		    event_date = $5, start_time = $6, end_time = $7, classroom = $8, notes = $9
		WHERE id = $10`,
		e.SubjectID, e.GroupID, e.TeacherID, e.EventType, e.EventDate, e.StartTime, e.EndTime, e.Classroom, e.Notes, e.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func DeleteSessionEvent(db *sqlx.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM session_schedule WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
