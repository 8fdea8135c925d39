package schedule

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

func GetGroupScheduleAPI(c *fiber.Ctx, db *sqlx.DB) error {
	groupID, err := strconv.ParseInt(c.Params("groupId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}

	ok, err := database.GroupExists(db, groupID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", groupID)
	}

	lessons, err := database.GetGroupSchedule(db, groupID)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": lessons})
}

func GetStudentScheduleAPI(c *fiber.Ctx, db *sqlx.DB) error {
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

	lessons, err := database.GetStudentSchedule(db, studentID)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": lessons})
}

func GetTeacherScheduleAPI(c *fiber.Ctx, db *sqlx.DB) error {
	teacherID, err := strconv.ParseInt(c.Params("teacherId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid teacher id")
	}

	ok, err := database.TeacherExists(db, teacherID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("teacher %d not found", teacherID)
	}

	lessons, err := database.GetTeacherSchedule(db, teacherID)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": lessons})
}

type scheduleEntryRequest struct {
	GroupID    int64   `json:"group_id" validate:"required"`
	SubjectID  int64   `json:"subject_id" validate:"required"`
	TeacherID  int64   `json:"teacher_id" validate:"required"`
	DayOfWeek  int     `json:"day_of_week" validate:"required,min=1,max=6"`
	StartTime  string  `json:"start_time" validate:"required"`
	EndTime    string  `json:"end_time" validate:"required"`
	Classroom  *string `json:"classroom"`
	LessonType *string `json:"lesson_type" validate:"omitempty,oneof=lecture practice lab seminar"`
}

func (r *scheduleEntryRequest) toModel() *models.ScheduleEntry {
	entry := &models.ScheduleEntry{
		GroupID:   r.GroupID,
		SubjectID: r.SubjectID,
		TeacherID: r.TeacherID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Classroom: r.Classroom,
	}
	if r.LessonType != nil {
		lt := models.LessonType(*r.LessonType)
		entry.LessonType = &lt
	}
	return entry
}

func CreateScheduleEntryAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var req scheduleEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid schedule entry: %v", err)
	}
	if err := checkScheduleRefs(db, req.GroupID, req.SubjectID, req.TeacherID); err != nil {
		return err
	}

	entry := req.toModel()
	id, err := database.CreateScheduleEntry(db, entry)
	if err != nil {
		return apperr.Internal(err)
	}
	entry.ID = id

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": entry})
}

func UpdateScheduleEntryAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid schedule id")
	}

	var req scheduleEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid schedule entry: %v", err)
	}
	if err := checkScheduleRefs(db, req.GroupID, req.SubjectID, req.TeacherID); err != nil {
		return err
	}

	entry := req.toModel()
	entry.ID = id

	found, err := database.UpdateScheduleEntry(db, entry)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("schedule entry %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true, "data": entry})
}

func DeleteScheduleEntryAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid schedule id")
	}

	found, err := database.DeleteScheduleEntry(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("schedule entry %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListSessionEventsAPI returns session events. Students get their own
// group's events regardless of any filter.
func ListSessionEventsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	claims := auth.CurrentClaims(c)

	if claims.Role == models.RoleStudent {
		if claims.StudentID == nil {
			return apperr.Forbidden("account is not linked to a student")
		}
		events, err := database.GetStudentSessionEvents(db, *claims.StudentID)
		if err != nil {
			return apperr.Internal(err)
		}
		return c.JSON(fiber.Map{"success": true, "data": events})
	}

	var groupID *int64
	if v := c.QueryInt("group_id"); v > 0 {
		id := int64(v)
		groupID = &id
	}

	events, err := database.ListSessionEvents(db, groupID)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": events})
}

func GetTeacherSessionEventsAPI(c *fiber.Ctx, db *sqlx.DB) error {
	teacherID, err := strconv.ParseInt(c.Params("teacherId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid teacher id")
	}

	events, err := database.GetTeacherSessionEvents(db, teacherID)
	if err != nil {
		return apperr.Internal(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": events})
}

type sessionEventRequest struct {
	SubjectID int64   `json:"subject_id" validate:"required"`
	GroupID   int64   `json:"group_id" validate:"required"`
	TeacherID int64   `json:"teacher_id" validate:"required"`
	EventType string  `json:"event_type" validate:"required,oneof=exam test credit consultation"`
	EventDate string  `json:"event_date" validate:"required"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Classroom *string `json:"classroom"`
	Notes     *string `json:"notes"`
}

func (r *sessionEventRequest) toModel() *models.SessionEvent {
	return &models.SessionEvent{
		SubjectID: r.SubjectID,
		GroupID:   r.GroupID,
		TeacherID: r.TeacherID,
		EventType: models.SessionEventType(r.EventType),
		EventDate: r.EventDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Classroom: r.Classroom,
		Notes:     r.Notes,
	}
}

func CreateSessionEventAPI(c *fiber.Ctx, db *sqlx.DB) error {
	var req sessionEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid session event: %v", err)
	}
	if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		return apperr.Validation("event_date must be in YYYY-MM-DD format")
	}
	if err := checkScheduleRefs(db, req.GroupID, req.SubjectID, req.TeacherID); err != nil {
		return err
	}

	event := req.toModel()
	id, err := database.CreateSessionEvent(db, event)
	if err != nil {
		return apperr.Internal(err)
	}
	event.ID = id

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": event})
}

func UpdateSessionEventAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid event id")
	}

	var req sessionEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid session event: %v", err)
	}
	if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
		return apperr.Validation("event_date must be in YYYY-MM-DD format")
	}

	event := req.toModel()
	event.ID = id

	found, err := database.UpdateSessionEvent(db, event)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("session event %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true, "data": event})
}

func DeleteSessionEventAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid event id")
	}

	found, err := database.DeleteSessionEvent(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("session event %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}

func checkScheduleRefs(db *sqlx.DB, groupID, subjectID, teacherID int64) error {
	ok, err := database.GroupExists(db, groupID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("group %d not found", groupID)
	}
	ok, err = database.SubjectExists(db, subjectID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("subject %d not found", subjectID)
	}
	ok, err = database.TeacherExists(db, teacherID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("teacher %d not found", teacherID)
	}
	return nil
}
