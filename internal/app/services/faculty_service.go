package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
)

// FacultyService handles admin-side faculty record operations
type FacultyService struct {
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// AddFaculty creates a new faculty member record
func (s *FacultyService) AddFaculty(facultyID, name, password string) error {
	if err := validateField("faculty ID", facultyID, models.MaxIDLen); err != nil {
		return err
	}
	if err := validateField("name", name, models.MaxNameLen); err != nil {
		return err
	}
	if err := validateField("password", password, models.MaxPasswordLen); err != nil {
		return err
	}

	err := s.facultyRepo.Create(models.Faculty{
		FacultyID: facultyID,
		Name:      name,
		Password:  password,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("facultyID", facultyID).Msg("Faculty member added")
	return nil
}

// GetFaculty retrieves a faculty member record by ID
func (s *FacultyService) GetFaculty(facultyID string) (models.Faculty, error) {
	return s.facultyRepo.GetByID(facultyID)
}

// UpdateFaculty overwrites a faculty member's name and/or password. An empty
// value keeps the stored field unchanged.
func (s *FacultyService) UpdateFaculty(facultyID, name, password string) error {
	faculty, err := s.facultyRepo.GetByID(facultyID)
	if err != nil {
		return err
	}

	if name != "" {
		if err := validateField("name", name, models.MaxNameLen); err != nil {
			return err
		}
		faculty.Name = name
	}
	if password != "" {
		if err := validateField("password", password, models.MaxPasswordLen); err != nil {
			return err
		}
		faculty.Password = password
	}

	return s.facultyRepo.Update(faculty)
}

// ChangePassword replaces the faculty member's password
func (s *FacultyService) ChangePassword(facultyID, newPassword string) error {
	if err := validateField("password", newPassword, models.MaxPasswordLen); err != nil {
		return err
	}

	faculty, err := s.facultyRepo.GetByID(facultyID)
	if err != nil {
		return err
	}

	faculty.Password = newPassword
	return s.facultyRepo.Update(faculty)
}
