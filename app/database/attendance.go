package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/models"
)

// ListStudentAttendance returns one student's attendance history with
// subject and teacher names joined in, newest first. When from or to is
// non-empty the range is applied inclusively.
func ListStudentAttendance(db *sqlx.DB, studentID int64, from, to string) ([]models.StudentAttendance, error) {
	query := `
		SELECT a.id, a.student_id, a.subject_id, a.teacher_id, a.date, a.status, a.notes, a.created_at,
		       sub.name AS subject_name,
		       t.name AS teacher_name
		FROM attendance a
		JOIN subjects sub ON a.subject_id = sub.id
		LEFT JOIN teachers t ON a.teacher_id = t.id
		WHERE a.student_id = $1`
	args := []interface{}{studentID}

	if from != "" {
		args = append(args, from)
		query += " AND a.date >= $2"
	}
	if to != "" {
		args = append(args, to)
		if from != "" {
			query += " AND a.date <= $3"
		} else {
			query += " AND a.date <= $2"
		}
	}
	query += " ORDER BY a.date DESC, a.id DESC"

	records := []models.StudentAttendance{}
	err := db.Select(&records, query, args...)
	return records, err
}

// GetGroupAttendance builds the roster view for marking a group on a
// date: every student of the group joined against their record for that
// date and subject, if any.
func GetGroupAttendance(db *sqlx.DB, groupID, subjectID int64, date string) ([]models.AttendanceRosterRow, error) {
	rows := []models.AttendanceRosterRow{}
	err := db.Select(&rows, `
		SELECT s.id AS student_id, s.name AS student_name, s.student_card,
		       a.status, a.notes, a.date
		FROM students s
		LEFT JOIN attendance a ON s.id = a.student_id AND a.subject_id = $1 AND a.date = $2
		WHERE s.group_id = $3
		ORDER BY s.name`, subjectID, date, groupID)
	return rows, err
}

// StudentAttendanceStats aggregates a student's records per status.
func StudentAttendanceStats(db *sqlx.DB, studentID int64) ([]models.StatusCount, error) {
	counts := []models.StatusCount{}
	err := db.Select(&counts, `
		SELECT status, COUNT(*) AS count
		FROM attendance
		WHERE student_id = $1
		GROUP BY status`, studentID)
	return counts, err
}

// ReplaceDayAttendance replaces the attendance of one group for one
// subject on one date with the submitted records. The delete and the
// inserts run in a single transaction: the whole day either applies or
// not at all. Records for students outside the group are skipped and
// counted, not rejected.
func ReplaceDayAttendance(db *sqlx.DB, date string, subjectID, groupID, teacherID int64, records []models.AttendanceRecord) (saved, skipped int, err error) {
	err = inTx(db, func(tx *sqlx.Tx) error {
		var ids []int64
		if err := tx.Select(&ids, `SELECT id FROM students WHERE group_id = $1`, groupID); err != nil {
			return err
		}
		members := make(map[int64]bool, len(ids))
		for _, id := range ids {
			members[id] = true
		}

		_, err := tx.Exec(`
			DELETE FROM attendance
			WHERE date = $1 AND subject_id = $2
			  AND student_id IN (SELECT id FROM students WHERE group_id = $3)`,
			date, subjectID, groupID)
		if err != nil {
			return err
		}

		// A duplicated student in one submission means the later entry
		// wins, same as re-submitting the day.
		last := make(map[int64]models.AttendanceRecord, len(records))
		order := make([]int64, 0, len(records))
		for _, rec := range records {
			if !members[rec.StudentID] {
				skipped++
				continue
			}
			if _, seen := last[rec.StudentID]; !seen {
				order = append(order, rec.StudentID)
			}
			last[rec.StudentID] = rec
		}

		for _, id := range order {
			rec := last[id]
			_, err := tx.Exec(`
				INSERT INTO attendance (student_id, subject_id, teacher_id, date, status, notes)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				rec.StudentID, subjectID, teacherID, date, rec.Status, rec.Notes)
			if err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return saved, skipped, nil
}
