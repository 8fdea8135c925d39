package apperr

import "fmt"

// Machine-readable error codes returned to API clients.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is an API error with a stable code and HTTP status. Datastore
// failures are wrapped so the driver text is logged but never sent to
// the client.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Status: 400, Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: 401, Code: CodeUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: 403, Code: CodeForbidden, Message: msg}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: 404, Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(msg string) *Error {
	return &Error{Status: 409, Code: CodeConflict, Message: msg}
}

// Internal hides the underlying error behind a generic message.
func Internal(err error) *Error {
	return &Error{Status: 500, Code: CodeInternal, Message: "internal server error", Err: err}
}
