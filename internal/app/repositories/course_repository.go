package repositories

import (
	"path/filepath"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/pkg/apperrors"
	"github.com/yigit/academia/internal/recordfile"
)

// CourseRepository handles storage operations for course records
type CourseRepository struct {
	col *recordfile.Collection[models.Course]
}

// NewCourseRepository creates a new course repository backed by a record file
// under dataDir
func NewCourseRepository(dataDir string) *CourseRepository {
	col := recordfile.NewCollection(
		filepath.Join(dataDir, "courses.dat"),
		courseCodec{},
		func(c models.Course) string { return c.CourseCode },
	)
	return &CourseRepository{col: col}
}

// Create appends a new course record after a best-effort duplicate check
func (r *CourseRepository) Create(course models.Course) error {
	_, found, err := r.col.FindByKey(course.CourseCode)
	if err != nil {
		return err
	}
	if found {
		return apperrors.ErrCourseCodeAlreadyExists
	}
	return r.col.Append(course)
}

// GetByCode retrieves a course by its course code
func (r *CourseRepository) GetByCode(courseCode string) (models.Course, error) {
	course, found, err := r.col.FindByKey(courseCode)
	if err != nil {
		return models.Course{}, err
	}
	if !found {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// Update overwrites the stored record for course.CourseCode in place
func (r *CourseRepository) Update(course models.Course) error {
	err := r.col.UpdateByKey(course.CourseCode, course)
	if apperrors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.ErrCourseNotFound
	}
	return err
}

// AdjustSeats changes a course's available seat count by delta. The update
// only applies to a row for which shouldApply is true, so a guard like
// "seats > 0" prevents the count from ever leaving its valid range. Returns
// apperrors.ErrRecordNotFound when no row matches the code and the guard.
func (r *CourseRepository) AdjustSeats(courseCode string, delta int, shouldApply func(models.Course) bool) error {
	return r.col.UpdateFirst(
		func(c models.Course) bool { return c.CourseCode == courseCode && shouldApply(c) },
		func(c models.Course) models.Course {
			c.AvailableSeats += delta
			return c
		},
	)
}

// Delete removes the course row via an atomic file rewrite. Returns
// ErrCourseNotFound when the code does not exist.
func (r *CourseRepository) Delete(courseCode string) error {
	removed, err := r.col.RemoveMatching(func(c models.Course) bool {
		return c.CourseCode == courseCode
	})
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// ListAvailable returns every course that still has free seats, in storage
// order.
func (r *CourseRepository) ListAvailable() ([]models.Course, error) {
	var courses []models.Course
	err := r.col.Scan(func(c models.Course) bool {
		if c.AvailableSeats > 0 {
			courses = append(courses, c)
		}
		return true
	})
	return courses, err
}

// ListByFaculty returns every course owned by the given faculty member
func (r *CourseRepository) ListByFaculty(facultyID string) ([]models.Course, error) {
	var courses []models.Course
	err := r.col.Scan(func(c models.Course) bool {
		if c.FacultyID == facultyID {
			courses = append(courses, c)
		}
		return true
	})
	return courses, err
}
