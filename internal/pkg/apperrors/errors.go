package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrRecordNotFound = errors.New("record not found")
	ErrStorage        = errors.New("storage failure")

	// Authentication errors. Every authentication failure, inactive
	// accounts included, collapses to this one sentinel; the reason is
	// only logged server-side.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
)

// Faculty errors
var (
	ErrFacultyNotFound        = errors.New("faculty not found")
	ErrFacultyIDAlreadyExists = errors.New("faculty ID already exists")
)

// Course errors
var (
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseCodeAlreadyExists = errors.New("course code already exists")
	ErrNotCourseOwner          = errors.New("course is owned by another faculty member")
	ErrNoSeatsAvailable        = errors.New("no available seats")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrNotEnrolled     = errors.New("not enrolled in this course")
)

// Is returns whether err matches target or any of the errors in errList.
// It saves chaining multiple errors.Is calls at the call site.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewStorageError wraps a low-level I/O error under ErrStorage so callers can
// classify it without inspecting the original error.
func NewStorageError(err error, message string) *CustomError {
	return NewCustomError(errors.Join(ErrStorage, err), message)
}
