package repositories

import (
	"path/filepath"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/pkg/apperrors"
	"github.com/yigit/academia/internal/recordfile"
)

// EnrollmentRepository handles storage operations for enrollment records.
// Dropped enrollments stay in the file as inactive tombstones; only a course
// removal physically purges rows.
type EnrollmentRepository struct {
	col *recordfile.Collection[models.Enrollment]
}

// NewEnrollmentRepository creates a new enrollment repository backed by a
// record file under dataDir
func NewEnrollmentRepository(dataDir string) *EnrollmentRepository {
	col := recordfile.NewCollection(
		filepath.Join(dataDir, "enrollments.dat"),
		enrollmentCodec{},
		func(e models.Enrollment) string { return e.StudentID + "/" + e.CourseCode },
	)
	return &EnrollmentRepository{col: col}
}

// Create appends a new active enrollment row. Callers must have verified
// that no active row exists for the pair.
func (r *EnrollmentRepository) Create(studentID, courseCode string) error {
	return r.col.Append(models.Enrollment{
		StudentID:  studentID,
		CourseCode: courseCode,
		IsEnrolled: true,
	})
}

// HasActive reports whether an active enrollment row exists for the pair
func (r *EnrollmentRepository) HasActive(studentID, courseCode string) (bool, error) {
	active := false
	err := r.col.Scan(func(e models.Enrollment) bool {
		if e.StudentID == studentID && e.CourseCode == courseCode && e.IsEnrolled {
			active = true
			return false
		}
		return true
	})
	return active, err
}

// Deactivate flips the active row for the pair to a tombstone, in place.
// Returns apperrors.ErrNotEnrolled when no active row exists.
func (r *EnrollmentRepository) Deactivate(studentID, courseCode string) error {
	err := r.col.UpdateFirst(
		func(e models.Enrollment) bool {
			return e.StudentID == studentID && e.CourseCode == courseCode && e.IsEnrolled
		},
		func(e models.Enrollment) models.Enrollment {
			e.IsEnrolled = false
			return e
		},
	)
	if apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.ErrNotEnrolled
	}
	return err
}

// RemoveByCourse purges every row, active or tombstoned, that references the
// course. Used when a course is deleted so stale rows can never resurface.
func (r *EnrollmentRepository) RemoveByCourse(courseCode string) (int, error) {
	return r.col.RemoveMatching(func(e models.Enrollment) bool {
		return e.CourseCode == courseCode
	})
}

// ListActiveByStudent returns the course codes the student is currently
// enrolled in, in storage order.
func (r *EnrollmentRepository) ListActiveByStudent(studentID string) ([]string, error) {
	var codes []string
	err := r.col.Scan(func(e models.Enrollment) bool {
		if e.StudentID == studentID && e.IsEnrolled {
			codes = append(codes, e.CourseCode)
		}
		return true
	})
	return codes, err
}

// ListActiveByCourse returns the IDs of students currently enrolled in the
// course, in storage order.
func (r *EnrollmentRepository) ListActiveByCourse(courseCode string) ([]string, error) {
	var ids []string
	err := r.col.Scan(func(e models.Enrollment) bool {
		if e.CourseCode == courseCode && e.IsEnrolled {
			ids = append(ids, e.StudentID)
		}
		return true
	})
	return ids, err
}
