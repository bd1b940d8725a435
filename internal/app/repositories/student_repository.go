package repositories

import (
	"path/filepath"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/pkg/apperrors"
	"github.com/yigit/academia/internal/recordfile"
)

// StudentRepository handles storage operations for student records
type StudentRepository struct {
	col *recordfile.Collection[models.Student]
}

// NewStudentRepository creates a new student repository backed by a record
// file under dataDir
func NewStudentRepository(dataDir string) *StudentRepository {
	col := recordfile.NewCollection(
		filepath.Join(dataDir, "students.dat"),
		studentCodec{},
		func(s models.Student) string { return s.StudentID },
	)
	return &StudentRepository{col: col}
}

// Create appends a new student record. The duplicate check and the append
// are separate collection operations, so uniqueness is best-effort here and
// ultimately the admin flow's responsibility.
func (r *StudentRepository) Create(student models.Student) error {
	_, found, err := r.col.FindByKey(student.StudentID)
	if err != nil {
		return err
	}
	if found {
		return apperrors.ErrStudentIDAlreadyExists
	}
	return r.col.Append(student)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(studentID string) (models.Student, error) {
	student, found, err := r.col.FindByKey(studentID)
	if err != nil {
		return models.Student{}, err
	}
	if !found {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Update overwrites the stored record for student.StudentID in place
func (r *StudentRepository) Update(student models.Student) error {
	err := r.col.UpdateByKey(student.StudentID, student)
	if apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.ErrStudentNotFound
	}
	return err
}

// SetActive flips the is_active flag in place. The result is tri-state:
// nil on success, ErrStudentNotFound when the ID is unknown, or a storage
// error.
func (r *StudentRepository) SetActive(studentID string, active bool) error {
	err := r.col.UpdateFirst(
		func(s models.Student) bool { return s.StudentID == studentID },
		func(s models.Student) models.Student {
			s.IsActive = active
			return s
		},
	)
	if apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.ErrStudentNotFound
	}
	return err
}
