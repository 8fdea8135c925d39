package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/FanTom52/zachetka/app/apperr"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zachetka_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zachetka_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	GradeSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zachetka_grade_submissions_total",
			Help: "Grade upserts by type and outcome",
		},
		[]string{"grade_type", "outcome"},
	)
)

// Middleware records a counter and duration sample per request. The
// registered route pattern is used as the path label to keep
// cardinality bounded.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var appErr *apperr.Error
			var fibErr *fiber.Error
			switch {
			case errors.As(err, &appErr):
				status = appErr.Status
			case errors.As(err, &fibErr):
				status = fibErr.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		method := c.Method()
		code := strconv.Itoa(status)

		RequestsTotal.WithLabelValues(path, method, code).Inc()
		RequestDuration.WithLabelValues(path, method, code).Observe(time.Since(start).Seconds())

		return err
	}
}
