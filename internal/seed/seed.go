package seed

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
	"github.com/yigit/academia/internal/pkg/apperrors"
)

// CreateSampleData loads a small set of faculty, student and course records
// so a fresh install is immediately usable. Records that already exist are
// left untouched; other errors are collected without stopping the run.
func CreateSampleData(repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating sample records...")
	var finalErr error

	faculty := []models.Faculty{
		{FacultyID: "F001", Name: "Grace Hopper", Password: "faculty123"},
		{FacultyID: "F002", Name: "Donald Knuth", Password: "faculty123"},
	}
	for _, f := range faculty {
		err := repos.FacultyRepository.Create(f)
		if err != nil && !errors.Is(err, apperrors.ErrFacultyIDAlreadyExists) {
			lgr.Error().Err(err).Str("facultyID", f.FacultyID).Msg("Error creating sample faculty member")
			finalErr = errors.Join(finalErr, err)
		}
	}

	students := []models.Student{
		{StudentID: "S001", Name: "Ada Lovelace", Password: "student123", IsActive: true},
		{StudentID: "S002", Name: "Alan Turing", Password: "student123", IsActive: true},
		{StudentID: "S003", Name: "Edsger Dijkstra", Password: "student123", IsActive: false},
	}
	for _, s := range students {
		err := repos.StudentRepository.Create(s)
		if err != nil && !errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
			lgr.Error().Err(err).Str("studentID", s.StudentID).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []models.Course{
		{CourseCode: "CS101", Name: "Intro to Programming", FacultyID: "F001", Credits: 4, MaxSeats: 30, AvailableSeats: 30},
		{CourseCode: "CS202", Name: "Data Structures", FacultyID: "F001", Credits: 3, MaxSeats: 25, AvailableSeats: 25},
		{CourseCode: "MA110", Name: "Discrete Mathematics", FacultyID: "F002", Credits: 3, MaxSeats: 40, AvailableSeats: 40},
	}
	for _, c := range courses {
		err := repos.CourseRepository.Create(c)
		if err != nil && !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			lgr.Error().Err(err).Str("courseCode", c.CourseCode).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample records ready.")
	}
	return finalErr
}
