package services

import (
	"fmt"
	"strings"

	"github.com/yigit/academia/internal/pkg/apperrors"
)

// Services defined in this package:
// - AuthService: Maps (role, id, password) to a verified principal
// - StudentService: Admin-side student record management
// - FacultyService: Admin-side faculty record management
// - CourseService: Course catalogue operations, owned by faculty members
// - EnrollmentService: Student enrollment and drop flows

// validateField checks that a record field is non-empty and fits its fixed
// on-disk width. Anything longer would be silently truncated by the codec.
func validateField(name, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, name)
	}
	if len(value) >= maxLen {
		return fmt.Errorf("%w: %s must be shorter than %d characters", apperrors.ErrValidationFailed, name, maxLen)
	}
	return nil
}
