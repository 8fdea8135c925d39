package main

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FanTom52/zachetka/app/apperr"
	"github.com/FanTom52/zachetka/app/config"
	"github.com/FanTom52/zachetka/app/database"
	"github.com/FanTom52/zachetka/app/logger"
	"github.com/FanTom52/zachetka/app/metrics"
	"github.com/FanTom52/zachetka/app/routes/attendance"
	"github.com/FanTom52/zachetka/app/routes/auth"
	"github.com/FanTom52/zachetka/app/routes/grades"
	"github.com/FanTom52/zachetka/app/routes/groups"
	"github.com/FanTom52/zachetka/app/routes/schedule"
	"github.com/FanTom52/zachetka/app/routes/statistics"
	"github.com/FanTom52/zachetka/app/routes/students"
	"github.com/FanTom52/zachetka/app/routes/subjects"
	"github.com/FanTom52/zachetka/app/routes/teachers"
	"github.com/FanTom52/zachetka/app/routes/users"
)

// errorHandler renders every error in the API error shape. Application
// errors keep their status and code; anything unexpected becomes a 500
// with the cause logged, not returned.
func errorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   appErr.Message,
			"code":    appErr.Code,
		})
	}

	var fibErr *fiber.Error
	if errors.As(err, &fibErr) {
		return c.Status(fibErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fibErr.Message,
			"code":    apperr.CodeInternal,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "internal server error",
		"code":    apperr.CodeInternal,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.Seed(db, cfg.BcryptCost); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	auth.Init(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return apperr.Internal(err)
		}
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	auth.SetupAuthRoutes(app, db)
	users.SetupUsersRoutes(app, db)
	students.SetupStudentsRoutes(app, db)
	teachers.SetupTeachersRoutes(app, db)
	groups.SetupGroupsRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	grades.SetupGradesRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	schedule.SetupScheduleRoutes(app, db)
	statistics.SetupStatisticsRoutes(app, db)

	// Catch-all for unknown routes (must be last).
	app.Use(func(c *fiber.Ctx) error {
		return apperr.NotFound("route not found")
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
