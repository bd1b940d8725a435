package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
)

// StudentService handles admin-side student record operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// AddStudent creates a new, active student record
func (s *StudentService) AddStudent(studentID, name, password string) error {
	if err := validateField("student ID", studentID, models.MaxIDLen); err != nil {
		return err
	}
	if err := validateField("name", name, models.MaxNameLen); err != nil {
		return err
	}
	if err := validateField("password", password, models.MaxPasswordLen); err != nil {
		return err
	}

	err := s.studentRepo.Create(models.Student{
		StudentID: studentID,
		Name:      name,
		Password:  password,
		IsActive:  true,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("studentID", studentID).Msg("Student added")
	return nil
}

// GetStudent retrieves a student record by ID
func (s *StudentService) GetStudent(studentID string) (models.Student, error) {
	return s.studentRepo.GetByID(studentID)
}

// UpdateStudent overwrites a student's name and/or password. An empty value
// keeps the stored field unchanged.
func (s *StudentService) UpdateStudent(studentID, name, password string) error {
	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return err
	}

	if name != "" {
		if err := validateField("name", name, models.MaxNameLen); err != nil {
			return err
		}
		student.Name = name
	}
	if password != "" {
		if err := validateField("password", password, models.MaxPasswordLen); err != nil {
			return err
		}
		student.Password = password
	}

	return s.studentRepo.Update(student)
}

// SetActive activates or deactivates a student account. A deactivated
// student can no longer authenticate; the record itself is never deleted.
func (s *StudentService) SetActive(studentID string, active bool) error {
	if err := s.studentRepo.SetActive(studentID, active); err != nil {
		return err
	}
	s.logger.Info().Str("studentID", studentID).Bool("active", active).Msg("Student activation changed")
	return nil
}

// ChangePassword replaces the student's password
func (s *StudentService) ChangePassword(studentID, newPassword string) error {
	if err := validateField("password", newPassword, models.MaxPasswordLen); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return err
	}

	student.Password = newPassword
	return s.studentRepo.Update(student)
}
