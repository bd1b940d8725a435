package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/pkg/apperrors"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(t.TempDir())
	require.NoError(t, err)
	return repos
}

func TestStudentRepository(t *testing.T) {
	t.Run("create then get round-trips the record", func(t *testing.T) {
		repos := newTestRepositories(t)

		src := models.Student{
			StudentID: "S100",
			Name:      "Barbara Liskov",
			Password:  "secret",
			IsActive:  true,
		}
		require.NoError(t, repos.StudentRepository.Create(src))

		got, err := repos.StudentRepository.GetByID("S100")
		require.NoError(t, err)
		assert.Equal(t, src, got)
	})

	t.Run("duplicate ID is rejected", func(t *testing.T) {
		repos := newTestRepositories(t)

		require.NoError(t, repos.StudentRepository.Create(models.Student{StudentID: "S100", Name: "First", Password: "p", IsActive: true}))

		err := repos.StudentRepository.Create(models.Student{StudentID: "S100", Name: "Second", Password: "p", IsActive: true})
		assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
	})

	t.Run("get of unknown ID fails", func(t *testing.T) {
		repos := newTestRepositories(t)

		_, err := repos.StudentRepository.GetByID("S404")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("set active flips the flag in place", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.StudentRepository.Create(models.Student{StudentID: "S100", Name: "N", Password: "p", IsActive: true}))

		require.NoError(t, repos.StudentRepository.SetActive("S100", false))
		got, err := repos.StudentRepository.GetByID("S100")
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		require.NoError(t, repos.StudentRepository.SetActive("S100", true))
		got, err = repos.StudentRepository.GetByID("S100")
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	})

	t.Run("set active on unknown ID fails", func(t *testing.T) {
		repos := newTestRepositories(t)

		err := repos.StudentRepository.SetActive("S404", false)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("update on unknown ID fails", func(t *testing.T) {
		repos := newTestRepositories(t)

		err := repos.StudentRepository.Update(models.Student{StudentID: "S404", Name: "Ghost", Password: "p"})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestFacultyRepository(t *testing.T) {
	t.Run("create then get round-trips the record", func(t *testing.T) {
		repos := newTestRepositories(t)

		src := models.Faculty{FacultyID: "F100", Name: "John McCarthy", Password: "lisp"}
		require.NoError(t, repos.FacultyRepository.Create(src))

		got, err := repos.FacultyRepository.GetByID("F100")
		require.NoError(t, err)
		assert.Equal(t, src, got)
	})

	t.Run("duplicate ID is rejected", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.FacultyRepository.Create(models.Faculty{FacultyID: "F100", Name: "A", Password: "p"}))

		err := repos.FacultyRepository.Create(models.Faculty{FacultyID: "F100", Name: "B", Password: "p"})
		assert.ErrorIs(t, err, apperrors.ErrFacultyIDAlreadyExists)
	})
}

func TestCourseRepository(t *testing.T) {
	makeCourse := func(code string, seats int) models.Course {
		return models.Course{
			CourseCode:     code,
			Name:           "Course " + code,
			FacultyID:      "F001",
			Credits:        3,
			MaxSeats:       seats,
			AvailableSeats: seats,
		}
	}

	t.Run("create then get round-trips the record", func(t *testing.T) {
		repos := newTestRepositories(t)

		src := makeCourse("CS500", 30)
		require.NoError(t, repos.CourseRepository.Create(src))

		got, err := repos.CourseRepository.GetByCode("CS500")
		require.NoError(t, err)
		assert.Equal(t, src, got)
	})

	t.Run("adjust seats applies delta when the guard holds", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.CourseRepository.Create(makeCourse("CS500", 2)))

		err := repos.CourseRepository.AdjustSeats("CS500", -1, func(c models.Course) bool { return c.AvailableSeats > 0 })
		require.NoError(t, err)

		got, err := repos.CourseRepository.GetByCode("CS500")
		require.NoError(t, err)
		assert.Equal(t, 1, got.AvailableSeats)
	})

	t.Run("adjust seats refuses when the guard rejects", func(t *testing.T) {
		repos := newTestRepositories(t)
		course := makeCourse("CS500", 1)
		course.AvailableSeats = 0
		require.NoError(t, repos.CourseRepository.Create(course))

		err := repos.CourseRepository.AdjustSeats("CS500", -1, func(c models.Course) bool { return c.AvailableSeats > 0 })
		assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)

		got, err := repos.CourseRepository.GetByCode("CS500")
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableSeats, "a rejected adjustment must not touch the count")
	})

	t.Run("delete removes the record", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.CourseRepository.Create(makeCourse("CS500", 10)))

		require.NoError(t, repos.CourseRepository.Delete("CS500"))

		_, err := repos.CourseRepository.GetByCode("CS500")
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("delete of unknown course fails", func(t *testing.T) {
		repos := newTestRepositories(t)

		err := repos.CourseRepository.Delete("CS404")
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("list available skips full courses", func(t *testing.T) {
		repos := newTestRepositories(t)
		full := makeCourse("CS501", 5)
		full.AvailableSeats = 0
		require.NoError(t, repos.CourseRepository.Create(makeCourse("CS500", 5)))
		require.NoError(t, repos.CourseRepository.Create(full))
		require.NoError(t, repos.CourseRepository.Create(makeCourse("CS502", 5)))

		courses, err := repos.CourseRepository.ListAvailable()
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "CS500", courses[0].CourseCode)
		assert.Equal(t, "CS502", courses[1].CourseCode)
	})

	t.Run("list by faculty filters on owner", func(t *testing.T) {
		repos := newTestRepositories(t)
		other := makeCourse("MA100", 5)
		other.FacultyID = "F002"
		require.NoError(t, repos.CourseRepository.Create(makeCourse("CS500", 5)))
		require.NoError(t, repos.CourseRepository.Create(other))

		courses, err := repos.CourseRepository.ListByFaculty("F001")
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "CS500", courses[0].CourseCode)
	})
}

func TestEnrollmentRepository(t *testing.T) {
	t.Run("create marks the pair active", func(t *testing.T) {
		repos := newTestRepositories(t)

		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))

		active, err := repos.EnrollmentRepository.HasActive("S001", "CS101")
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("deactivate leaves a tombstone and clears active state", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))

		require.NoError(t, repos.EnrollmentRepository.Deactivate("S001", "CS101"))

		active, err := repos.EnrollmentRepository.HasActive("S001", "CS101")
		require.NoError(t, err)
		assert.False(t, active)

		codes, err := repos.EnrollmentRepository.ListActiveByStudent("S001")
		require.NoError(t, err)
		assert.Empty(t, codes)
	})

	t.Run("deactivate without an active row fails", func(t *testing.T) {
		repos := newTestRepositories(t)

		err := repos.EnrollmentRepository.Deactivate("S001", "CS101")
		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	})

	t.Run("re-enroll after drop appends a fresh active row", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Deactivate("S001", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))

		active, err := repos.EnrollmentRepository.HasActive("S001", "CS101")
		require.NoError(t, err)
		assert.True(t, active)

		codes, err := repos.EnrollmentRepository.ListActiveByStudent("S001")
		require.NoError(t, err)
		assert.Equal(t, []string{"CS101"}, codes)
	})

	t.Run("remove by course purges tombstones too", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Deactivate("S001", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Create("S002", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Create("S002", "MA110"))

		removed, err := repos.EnrollmentRepository.RemoveByCourse("CS101")
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		ids, err := repos.EnrollmentRepository.ListActiveByCourse("CS101")
		require.NoError(t, err)
		assert.Empty(t, ids)

		codes, err := repos.EnrollmentRepository.ListActiveByStudent("S002")
		require.NoError(t, err)
		assert.Equal(t, []string{"MA110"}, codes)
	})

	t.Run("list active by course reports enrolled students in order", func(t *testing.T) {
		repos := newTestRepositories(t)
		require.NoError(t, repos.EnrollmentRepository.Create("S001", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Create("S002", "CS101"))
		require.NoError(t, repos.EnrollmentRepository.Create("S003", "MA110"))

		ids, err := repos.EnrollmentRepository.ListActiveByCourse("CS101")
		require.NoError(t, err)
		assert.Equal(t, []string{"S001", "S002"}, ids)
	})
}
