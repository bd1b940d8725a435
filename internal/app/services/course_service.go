package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
	"github.com/yigit/academia/internal/pkg/apperrors"
)

// CourseService handles course catalogue operations on behalf of faculty
// members.
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// AddCourse creates a new course owned by facultyID with all seats free
func (s *CourseService) AddCourse(courseCode, name, facultyID string, credits, maxSeats int) error {
	if err := validateField("course code", courseCode, models.MaxCourseCodeLen); err != nil {
		return err
	}
	if err := validateField("name", name, models.MaxNameLen); err != nil {
		return err
	}
	if credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", apperrors.ErrValidationFailed)
	}
	if maxSeats <= 0 {
		return fmt.Errorf("%w: maximum seats must be positive", apperrors.ErrValidationFailed)
	}

	err := s.courseRepo.Create(models.Course{
		CourseCode:     courseCode,
		Name:           name,
		FacultyID:      facultyID,
		Credits:        credits,
		MaxSeats:       maxSeats,
		AvailableSeats: maxSeats,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("courseCode", courseCode).Str("facultyID", facultyID).Msg("Course added")
	return nil
}

// RemoveCourse deletes a course owned by facultyID and cascades the removal
// to every enrollment row referencing it, tombstones included. The course
// delete and the enrollment purge are separate atomic rewrites; a concurrent
// reader may briefly observe the course gone while its enrollments linger.
func (s *CourseService) RemoveCourse(courseCode, facultyID string) error {
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return err
	}
	if course.FacultyID != facultyID {
		return apperrors.ErrNotCourseOwner
	}

	if err := s.courseRepo.Delete(courseCode); err != nil {
		return err
	}

	purged, err := s.enrollmentRepo.RemoveByCourse(courseCode)
	if err != nil {
		// The course row is already gone; report the half-finished cascade
		// instead of pretending the removal failed outright.
		s.logger.Error().Err(err).Str("courseCode", courseCode).Msg("Enrollment cascade failed after course removal")
		return err
	}

	s.logger.Info().
		Str("courseCode", courseCode).
		Str("facultyID", facultyID).
		Int("enrollmentsPurged", purged).
		Msg("Course removed")
	return nil
}

// GetCourse retrieves a course by its code
func (s *CourseService) GetCourse(courseCode string) (models.Course, error) {
	return s.courseRepo.GetByCode(courseCode)
}

// ListAvailableCourses returns every course with at least one free seat
func (s *CourseService) ListAvailableCourses() ([]models.Course, error) {
	return s.courseRepo.ListAvailable()
}

// ListFacultyCourses returns the courses owned by facultyID
func (s *CourseService) ListFacultyCourses(facultyID string) ([]models.Course, error) {
	return s.courseRepo.ListByFaculty(facultyID)
}

// ListCourseEnrollments returns the IDs of students actively enrolled in a
// course owned by facultyID. Ownership is checked so faculty members cannot
// inspect each other's rosters.
func (s *CourseService) ListCourseEnrollments(courseCode, facultyID string) ([]string, error) {
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return nil, err
	}
	if course.FacultyID != facultyID {
		return nil, apperrors.ErrNotCourseOwner
	}

	return s.enrollmentRepo.ListActiveByCourse(courseCode)
}
