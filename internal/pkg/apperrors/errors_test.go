package apperrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("message takes precedence over the wrapped error text", func(t *testing.T) {
		err := NewCustomError(ErrRecordNotFound, "student lookup failed")
		assert.Equal(t, "student lookup failed", err.Error())
	})

	t.Run("falls back to the wrapped error text without a message", func(t *testing.T) {
		err := NewCustomError(ErrRecordNotFound, "")
		assert.Equal(t, ErrRecordNotFound.Error(), err.Error())
	})

	t.Run("unwrap exposes the underlying sentinel", func(t *testing.T) {
		err := NewCustomError(ErrCourseNotFound, "catalogue lookup")
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestNewStorageError(t *testing.T) {
	cause := fs.ErrPermission
	err := NewStorageError(cause, "opening students.dat")

	assert.ErrorIs(t, err, ErrStorage, "storage errors must classify under the sentinel")
	assert.ErrorIs(t, err, cause, "the original cause must stay reachable")
	assert.Equal(t, "opening students.dat", err.Error())
}

func TestIs(t *testing.T) {
	wrapped := NewCustomError(ErrStudentNotFound, "lookup")

	assert.True(t, Is(wrapped, ErrStudentNotFound))
	assert.True(t, Is(wrapped, ErrCourseNotFound, ErrFacultyNotFound, ErrStudentNotFound))
	assert.False(t, Is(wrapped, ErrCourseNotFound, ErrFacultyNotFound))
	assert.False(t, Is(errors.New("plain"), ErrStudentNotFound))
}
