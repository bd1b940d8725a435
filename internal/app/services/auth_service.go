package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/repositories"
	"github.com/yigit/academia/internal/pkg/apperrors"
)

// AdminCredentials is the single fixed credential pair for the admin role.
// It lives in process configuration, never in a collection.
type AdminCredentials struct {
	ID       string
	Password string
}

// AuthService handles authentication operations
type AuthService struct {
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	admin       AdminCredentials
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	admin AdminCredentials,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		admin:       admin,
		logger:      logger,
	}
}

// Authenticate verifies a (role, id, password) triple and returns the
// principal identity to bind to the session.
//
// Every failure collapses to apperrors.ErrInvalidCredentials: the remote
// party must not learn whether the ID was unknown, the password wrong or the
// account inactive. The distinction is only logged locally.
func (s *AuthService) Authenticate(role models.RoleType, id, password string) (models.Principal, error) {
	switch role {
	case models.RoleAdmin:
		if id == s.admin.ID && password == s.admin.Password {
			return models.Principal{Role: models.RoleAdmin, ID: id}, nil
		}
		s.logger.Debug().Str("id", id).Msg("Admin credential mismatch")
		return models.Principal{}, apperrors.ErrInvalidCredentials

	case models.RoleFaculty:
		faculty, err := s.facultyRepo.GetByID(id)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrFacultyNotFound) {
				s.logger.Debug().Str("id", id).Msg("Faculty not found")
				return models.Principal{}, apperrors.ErrInvalidCredentials
			}
			return models.Principal{}, err
		}
		if faculty.Password != password {
			s.logger.Debug().Str("id", id).Msg("Faculty password mismatch")
			return models.Principal{}, apperrors.ErrInvalidCredentials
		}
		return models.Principal{Role: models.RoleFaculty, ID: faculty.FacultyID}, nil

	case models.RoleStudent:
		student, err := s.studentRepo.GetByID(id)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrStudentNotFound) {
				s.logger.Debug().Str("id", id).Msg("Student not found")
				return models.Principal{}, apperrors.ErrInvalidCredentials
			}
			return models.Principal{}, err
		}
		if student.Password != password {
			s.logger.Debug().Str("id", id).Msg("Student password mismatch")
			return models.Principal{}, apperrors.ErrInvalidCredentials
		}
		if !student.IsActive {
			s.logger.Debug().Str("id", id).Msg("Student account inactive")
			return models.Principal{}, apperrors.ErrInvalidCredentials
		}
		return models.Principal{Role: models.RoleStudent, ID: student.StudentID}, nil

	default:
		s.logger.Debug().Str("role", string(role)).Msg("Unknown role in authentication request")
		return models.Principal{}, apperrors.ErrInvalidCredentials
	}
}
