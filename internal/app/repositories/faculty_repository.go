package repositories

import (
	"path/filepath"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/pkg/apperrors"
	"github.com/yigit/academia/internal/recordfile"
)

// FacultyRepository handles storage operations for faculty records
type FacultyRepository struct {
	col *recordfile.Collection[models.Faculty]
}

// NewFacultyRepository creates a new faculty repository backed by a record
// file under dataDir
func NewFacultyRepository(dataDir string) *FacultyRepository {
	col := recordfile.NewCollection(
		filepath.Join(dataDir, "faculty.dat"),
		facultyCodec{},
		func(f models.Faculty) string { return f.FacultyID },
	)
	return &FacultyRepository{col: col}
}

// Create appends a new faculty record after a best-effort duplicate check
func (r *FacultyRepository) Create(faculty models.Faculty) error {
	_, found, err := r.col.FindByKey(faculty.FacultyID)
	if err != nil {
		return err
	}
	if found {
		return apperrors.ErrFacultyIDAlreadyExists
	}
	return r.col.Append(faculty)
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(facultyID string) (models.Faculty, error) {
	faculty, found, err := r.col.FindByKey(facultyID)
	if err != nil {
		return models.Faculty{}, err
	}
	if !found {
		return models.Faculty{}, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

// Update overwrites the stored record for faculty.FacultyID in place
func (r *FacultyRepository) Update(faculty models.Faculty) error {
	err := r.col.UpdateByKey(faculty.FacultyID, faculty)
	if apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.ErrFacultyNotFound
	}
	return err
}
