package attendance

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/models"
	"github.com/FanTom52/zachetka/app/routes/auth"
)

var validate = validator.New()

// SubmitAttendanceRequest replaces a whole day for one group and
// subject in a single call.
type SubmitAttendanceRequest struct {
	Date      string                    `json:"date" validate:"required"`
	SubjectID int64                     `json:"subject_id" validate:"required"`
	GroupID   int64                     `json:"group_id" validate:"required"`
	TeacherID *int64                    `json:"teacher_id"`
	Records   []models.AttendanceRecord `json:"attendance_records" validate:"required,min=1,dive"`
}

func SubmitAttendanceAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var req SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid attendance: %v", err)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return apperr.Validation("date must be in YYYY-MM-DD format")
	}

	claims := auth.CurrentClaims(c)
	teacherID := req.TeacherID
	if claims.TeacherID != nil {
		teacherID = claims.TeacherID
	}
	if teacherID == nil {
		return apperr.Validation("teacher_id is required")
	}

	ok, err := database.GroupExists(db, req.GroupID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", req.GroupID)
	}
	ok, err = database.SubjectExists(db, req.SubjectID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("subject %d not found", req.SubjectID)
	}

	saved, skipped, err := database.ReplaceDayAttendance(db, req.Date, req.SubjectID, req.GroupID, *teacherID, req.Records)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"saved":   saved,
		"skipped": skipped,
	})
}

func GetStudentAttendanceAPI(c *fiber.Ctx, db *sqlx.DB) error {
	studentID, err := strconv.ParseInt(c.Params("studentId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid student id")
	}

	ok, err := database.StudentExists(db, studentID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("student %d not found", studentID)
	}

	from, to := c.Query("from"), c.Query("to")
	for _, d := range []string{from, to} {
		if d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return apperr.Validation("from/to must be in YYYY-MM-DD format")
			}
		}
	}

	records, err := database.ListStudentAttendance(db, studentID, from, to)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": records})
}

// GetGroupAttendanceAPI returns the roster view used while marking a
// group: every student with their record for the date, if any.
func GetGroupAttendanceAPI(c *fiber.Ctx, db *sqlx.DB) error {
	groupID, err := strconv.ParseInt(c.Params("groupId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}
	subjectID, err := strconv.ParseInt(c.Params("subjectId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid subject id")
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperr.Validation("date must be in YYYY-MM-DD format")
	}

	ok, err := database.GroupExists(db, groupID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", groupID)
	}

	rows, err := database.GetGroupAttendance(db, groupID, subjectID, date)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": rows, "date": date})
}

// GetStudentAttendanceStatsAPI aggregates one student's records per
// status, with the share of each.
func GetStudentAttendanceStatsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	studentID, err := strconv.ParseInt(c.Params("studentId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid student id")
	}

	ok, err := database.StudentExists(db, studentID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("student %d not found", studentID)
	}

	counts, err := database.StudentAttendanceStats(db, studentID)
	if err != nil {
		return apperr.Internal(err)
	}

	total := 0
	for _, sc := range counts {
		total += sc.Count
	}

	type statusStat struct {
		Status     string  `json:"status"`
		Count      int     `json:"count"`
		Percentage float64 `json:"percentage"`
	}
	stats := make([]statusStat, 0, len(counts))
	for _, sc := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(sc.Count) * 100 / float64(total)
		}
		stats = append(stats, statusStat{Status: sc.Status, Count: sc.Count, Percentage: pct})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
		"total":   total,
	})
}
