package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
	"github.com/yigit/academia/internal/pkg/apperrors"
)

// EnrollmentService handles the student enrollment and drop flows.
//
// Enroll and Drop each touch the course and enrollment collections as a
// sequence of independently locked operations; there is no cross-collection
// transaction. A concurrent observer can see the enrollment row before the
// seat count moves. That window is part of the service's contract, not a
// bug to close silently.
type EnrollmentService struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Enroll registers studentID in the course. The checks run in a fixed
// order: course exists with a free seat, then no active enrollment for the
// pair, then the row is appended and the seat count decremented. The
// decrement is guarded so the count can never go below zero even when two
// sessions race for the last seat.
func (s *EnrollmentService) Enroll(studentID, courseCode string) error {
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return err
	}
	if course.AvailableSeats <= 0 {
		return apperrors.ErrNoSeatsAvailable
	}

	enrolled, err := s.enrollmentRepo.HasActive(studentID, courseCode)
	if err != nil {
		return err
	}
	if enrolled {
		return apperrors.ErrAlreadyEnrolled
	}

	if err := s.enrollmentRepo.Create(studentID, courseCode); err != nil {
		return err
	}

	err = s.courseRepo.AdjustSeats(courseCode, -1, func(c models.Course) bool {
		return c.AvailableSeats > 0
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrRecordNotFound) {
			// Lost a race for the last seat after our row was appended. The
			// row must not stay active without a seat backing it, so roll it
			// back to a tombstone before reporting the course full.
			s.logger.Warn().
				Str("studentID", studentID).
				Str("courseCode", courseCode).
				Msg("Seat decrement found no free seat after enrollment append")
			if rbErr := s.enrollmentRepo.Deactivate(studentID, courseCode); rbErr != nil {
				s.logger.Error().Err(rbErr).
					Str("studentID", studentID).
					Str("courseCode", courseCode).
					Msg("Failed to roll back enrollment row after losing seat race")
			}
			return apperrors.ErrNoSeatsAvailable
		}
		return err
	}

	s.logger.Info().Str("studentID", studentID).Str("courseCode", courseCode).Msg("Student enrolled")
	return nil
}

// Drop closes the student's active enrollment in the course: the seat is
// returned to the pool and the row is flipped to a tombstone, not deleted.
func (s *EnrollmentService) Drop(studentID, courseCode string) error {
	enrolled, err := s.enrollmentRepo.HasActive(studentID, courseCode)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperrors.ErrNotEnrolled
	}

	err = s.courseRepo.AdjustSeats(courseCode, 1, func(c models.Course) bool {
		return c.AvailableSeats < c.MaxSeats
	})
	if err != nil && !apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return err
	}

	if err := s.enrollmentRepo.Deactivate(studentID, courseCode); err != nil {
		return err
	}

	s.logger.Info().Str("studentID", studentID).Str("courseCode", courseCode).Msg("Course dropped")
	return nil
}

// ListEnrolledCourses returns the course codes studentID is actively
// enrolled in.
func (s *EnrollmentService) ListEnrolledCourses(studentID string) ([]string, error) {
	return s.enrollmentRepo.ListActiveByStudent(studentID)
}
