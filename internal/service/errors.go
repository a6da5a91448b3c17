package service

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrTeacherNotFound        = errors.New("teacher not found")
	ErrStudentNotFound        = errors.New("student not found")
	ErrLeaveNotFound          = errors.New("leave not found")
	ErrSalaryRecordNotFound   = errors.New("salary record not found")
	ErrBookNotFound           = errors.New("book not found")
	ErrInfrastructureNotFound = errors.New("infrastructure not found")
	ErrNoticeNotFound         = errors.New("notice not found")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The distinction is logged server-side only.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAuthRequired         = errors.New("not authorized, token missing")
	ErrTokenInvalid         = errors.New("not authorized, token failed")
	ErrAdminOnly            = errors.New("access denied: admin only")
	ErrOwnLeaveOnly         = errors.New("only the teacher can appeal their own leave")
	ErrTooManyLoginAttempts = errors.New("too many login attempts, try again later")
)

// ValidationError marks a request whose payload fails a field or business
// rule check; handlers translate it to a 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func failValidation(format string, args ...interface{}) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var validationErr ValidationError
	return errors.As(err, &validationErr)
}
