package grades

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/metrics"
	"github.com/FanTom52/zachetka/app/models"
	"github.com/FanTom52/zachetka/app/routes/auth"
)

var validate = validator.New()

// SubmitGradeRequest covers both numeric and pass/fail submissions. The
// grade_type decides which of grade/is_pass must be present.
type SubmitGradeRequest struct {
	StudentID int64   `json:"student_id" validate:"required"`
	SubjectID int64   `json:"subject_id" validate:"required"`
	Grade     *int    `json:"grade"`
	IsPass    *bool   `json:"is_pass"`
	GradeType string  `json:"grade_type" validate:"required"`
	Date      string  `json:"date"`
	TeacherID *int64  `json:"teacher_id"`
	Notes     *string `json:"notes"`
}

func SubmitGradeAPI(c *fiber.Ctx, db *sqlx.DB) error {
	return submitGrade(c, db, false)
}

// SubmitCreditAPI accepts only the session assessment types. It shares
// the upsert path with SubmitGradeAPI; the separate endpoint narrows
// what clients of the session journal can send.
func SubmitCreditAPI(c *fiber.Ctx, db *sqlx.DB) error {
	return submitGrade(c, db, true)
}

func submitGrade(c *fiber.Ctx, db *sqlx.DB, creditOnly bool) error {
	var req SubmitGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return apperr.Validation("invalid grade: %v", err)
	}

	gradeType := models.GradeType(req.GradeType)
	if !gradeType.Valid() {
		return apperr.Validation("unknown grade_type %q", req.GradeType)
	}
	if creditOnly && gradeType != models.GradeCredit && gradeType != models.GradeTest {
		return apperr.Validation("grade_type must be credit or test")
	}

	// Exactly one of grade/is_pass is stored, depending on the type.
	var gradeVal, passVal *int
	if gradeType.UsesPassFlag() {
		if req.IsPass == nil {
			return apperr.Validation("is_pass is required for grade_type %q", gradeType)
		}
		if req.Grade != nil {
			return apperr.Validation("grade is not allowed for grade_type %q", gradeType)
		}
		v := 0
		if *req.IsPass {
			v = 1
		}
		passVal = &v
	} else {
		if req.Grade == nil {
			return apperr.Validation("grade is required for grade_type %q", gradeType)
		}
		if *req.Grade < 2 || *req.Grade > 5 {
			return apperr.Validation("grade must be between 2 and 5")
		}
		if req.IsPass != nil {
			return apperr.Validation("is_pass is not allowed for grade_type %q", gradeType)
		}
		gradeVal = req.Grade
	}

	claims := auth.CurrentClaims(c)
	teacherID := req.TeacherID
	if claims.TeacherID != nil {
		teacherID = claims.TeacherID
	}
	if teacherID == nil {
		return apperr.Validation("teacher_id is required")
	}

	ok, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("student %d not found", req.StudentID)
	}
	ok, err = database.SubjectExists(db, req.SubjectID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("subject %d not found", req.SubjectID)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperr.Validation("date must be in YYYY-MM-DD format")
	}

	grade := &models.Grade{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Grade:     gradeVal,
		IsPass:    passVal,
		GradeType: gradeType,
		Date:      date,
		TeacherID: *teacherID,
		Notes:     req.Notes,
	}

	result, err := database.UpsertGrade(db, grade)
	if err != nil {
		return apperr.Internal(err)
	}

	outcome := "updated"
	status := fiber.StatusOK
	if result.Created {
		outcome = "created"
		status = fiber.StatusCreated
	}
	metrics.GradeSubmissions.WithLabelValues(string(gradeType), outcome).Inc()

	grade.ID = result.ID
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    grade,
		"created": result.Created,
	})
}

func GetStudentGradesAPI(c *fiber.Ctx, db *sqlx.DB) error {
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

	grades, err := database.ListStudentGrades(db, studentID)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": grades})
}

func GetGradebookAPI(c *fiber.Ctx, db *sqlx.DB) error {
	groupID, err := strconv.ParseInt(c.Params("groupId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid group id")
	}
	subjectID, err := strconv.ParseInt(c.Params("subjectId"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid subject id")
	}

	gradebook, err := database.GetGradebook(db, groupID, subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("group or subject not found")
		}
		return apperr.Internal(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": gradebook})
}

// DeleteGradeAPI removes one grade row. Teachers may only delete grades
// they issued themselves; admins may delete any.
func DeleteGradeAPI(c *fiber.Ctx, db *sqlx.DB) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid grade id")
	}

	grade, err := database.GetGradeByID(db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("grade %d not found", id)
		}
		return apperr.Internal(err)
	}

	claims := auth.CurrentClaims(c)
	if claims.Role != models.RoleAdmin {
		if claims.TeacherID == nil || *claims.TeacherID != grade.TeacherID {
			return apperr.Forbidden("grades can only be deleted by the teacher who issued them")
		}
	}

	found, err := database.DeleteGrade(db, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("grade %d not found", id)
	}

	return c.JSON(fiber.Map{"success": true})
}
