package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academia/internal/app/repositories"
)

func TestCreateSampleData(t *testing.T) {
	t.Run("fresh install gets usable records", func(t *testing.T) {
		repos, err := repositories.NewRepositories(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, CreateSampleData(repos, zerolog.Nop()))

		student, err := repos.StudentRepository.GetByID("S001")
		require.NoError(t, err)
		assert.True(t, student.IsActive)

		inactive, err := repos.StudentRepository.GetByID("S003")
		require.NoError(t, err)
		assert.False(t, inactive.IsActive)

		_, err = repos.FacultyRepository.GetByID("F001")
		assert.NoError(t, err)

		course, err := repos.CourseRepository.GetByCode("CS101")
		require.NoError(t, err)
		assert.Equal(t, course.MaxSeats, course.AvailableSeats)
	})

	t.Run("second run leaves existing records alone", func(t *testing.T) {
		repos, err := repositories.NewRepositories(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, CreateSampleData(repos, zerolog.Nop()))

		// Mutate a seeded record, then re-seed.
		require.NoError(t, repos.StudentRepository.SetActive("S001", false))
		require.NoError(t, CreateSampleData(repos, zerolog.Nop()))

		student, err := repos.StudentRepository.GetByID("S001")
		require.NoError(t, err)
		assert.False(t, student.IsActive, "re-seeding must not reset existing records")
	})
}
