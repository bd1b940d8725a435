package session

import (
	"github.com/yigit/academia/internal/pkg/apperrors"
)

// userMessage translates a domain error into the single line reported to the
// client. Storage failures collapse to a generic message; details stay in
// the server log.
func userMessage(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound):
		return "Student not found!\n"
	case apperrors.Is(err, apperrors.ErrFacultyNotFound):
		return "Faculty not found!\n"
	case apperrors.Is(err, apperrors.ErrCourseNotFound):
		return "Course not found.\n"
	case apperrors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		return "Student ID already exists!\n"
	case apperrors.Is(err, apperrors.ErrFacultyIDAlreadyExists):
		return "Faculty ID already exists!\n"
	case apperrors.Is(err, apperrors.ErrCourseCodeAlreadyExists):
		return "Course code already exists!\n"
	case apperrors.Is(err, apperrors.ErrNoSeatsAvailable):
		return "No available seats in this course.\n"
	case apperrors.Is(err, apperrors.ErrAlreadyEnrolled):
		return "You are already enrolled in this course.\n"
	case apperrors.Is(err, apperrors.ErrNotEnrolled):
		return "You are not enrolled in this course.\n"
	case apperrors.Is(err, apperrors.ErrNotCourseOwner):
		return "Course not found or you don't own this course.\n"
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		return "Invalid input: " + err.Error() + "\n"
	default:
		return "An error occurred while processing the request.\n"
	}
}
