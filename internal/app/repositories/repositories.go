package repositories

import (
	"fmt"
	"os"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	FacultyRepository    *FacultyRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories over record files in dataDir,
// creating the directory if needed. The four collections are process-wide
// singletons shared by every client session.
func NewRepositories(dataDir string) (*Repositories, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	return &Repositories{
		StudentRepository:    NewStudentRepository(dataDir),
		FacultyRepository:    NewFacultyRepository(dataDir),
		CourseRepository:     NewCourseRepository(dataDir),
		EnrollmentRepository: NewEnrollmentRepository(dataDir),
	}, nil
}
