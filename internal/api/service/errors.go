package service

import (
	"errors"

	"ctchen222/student-tracker/internal/api/models"
)

// ErrValidation is wrapped by every ValidationError so callers can test the
// kind with errors.Is.
var ErrValidation = errors.New("validation failed")

// Client-facing validation messages.
const (
	MsgCredentialsRequired       = "Username and password required"
	MsgPasswordTooLong           = "password must be at most 72 bytes"
	MsgUsernameTaken             = "username already taken"
	MsgGradeFieldsMissing        = "letterGrade or percent are missing"
	MsgStudentGradeFieldsMissing = "StudentID, letterGrade, or percent are missing"
	MsgStudentIDRequired         = "StudentID is required"
)

// MsgPercentInvalid is returned when percent is not an integer in [0,100].
var MsgPercentInvalid = models.ErrPercentInvalid.Error()

// ValidationError reports a request that was rejected before any side effect.
// Message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
