package repositories

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/yigit/academia/internal/app/models"
)

// The codecs below define the on-disk layout of each record type: string
// fields are NUL-padded to their fixed width, integers are little-endian
// int32. The layout must stay stable across releases because the data files
// carry no version information.

const (
	studentRecordSize    = models.MaxIDLen + models.MaxNameLen + models.MaxPasswordLen + 4
	facultyRecordSize    = models.MaxIDLen + models.MaxNameLen + models.MaxPasswordLen
	courseRecordSize     = models.MaxCourseCodeLen + models.MaxNameLen + models.MaxIDLen + 12
	enrollmentRecordSize = models.MaxIDLen + models.MaxCourseCodeLen + 4
)

// putFixed copies s into a fixed-width field, NUL-padding the remainder.
// The caller validates field lengths; anything longer is truncated.
func putFixed(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// getFixed reads a NUL-padded fixed-width field back into a string.
func getFixed(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}

func putInt32(dst []byte, v int) {
	binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
}

func getInt32(src []byte) int {
	return int(int32(binary.LittleEndian.Uint32(src)))
}

type studentCodec struct{}

func (studentCodec) RecordSize() int { return studentRecordSize }

func (studentCodec) MarshalRecord(s models.Student) ([]byte, error) {
	buf := make([]byte, studentRecordSize)
	putFixed(buf[0:models.MaxIDLen], s.StudentID)
	putFixed(buf[models.MaxIDLen:models.MaxIDLen+models.MaxNameLen], s.Name)
	putFixed(buf[models.MaxIDLen+models.MaxNameLen:models.MaxIDLen+models.MaxNameLen+models.MaxPasswordLen], s.Password)
	active := 0
	if s.IsActive {
		active = 1
	}
	putInt32(buf[studentRecordSize-4:], active)
	return buf, nil
}

func (studentCodec) UnmarshalRecord(data []byte) (models.Student, error) {
	if len(data) != studentRecordSize {
		return models.Student{}, fmt.Errorf("student record: expected %d bytes, got %d", studentRecordSize, len(data))
	}
	return models.Student{
		StudentID: getFixed(data[0:models.MaxIDLen]),
		Name:      getFixed(data[models.MaxIDLen : models.MaxIDLen+models.MaxNameLen]),
		Password:  getFixed(data[models.MaxIDLen+models.MaxNameLen : models.MaxIDLen+models.MaxNameLen+models.MaxPasswordLen]),
		IsActive:  getInt32(data[studentRecordSize-4:]) != 0,
	}, nil
}

type facultyCodec struct{}

func (facultyCodec) RecordSize() int { return facultyRecordSize }

func (facultyCodec) MarshalRecord(f models.Faculty) ([]byte, error) {
	buf := make([]byte, facultyRecordSize)
	putFixed(buf[0:models.MaxIDLen], f.FacultyID)
	putFixed(buf[models.MaxIDLen:models.MaxIDLen+models.MaxNameLen], f.Name)
	putFixed(buf[models.MaxIDLen+models.MaxNameLen:], f.Password)
	return buf, nil
}

func (facultyCodec) UnmarshalRecord(data []byte) (models.Faculty, error) {
	if len(data) != facultyRecordSize {
		return models.Faculty{}, fmt.Errorf("faculty record: expected %d bytes, got %d", facultyRecordSize, len(data))
	}
	return models.Faculty{
		FacultyID: getFixed(data[0:models.MaxIDLen]),
		Name:      getFixed(data[models.MaxIDLen : models.MaxIDLen+models.MaxNameLen]),
		Password:  getFixed(data[models.MaxIDLen+models.MaxNameLen:]),
	}, nil
}

type courseCodec struct{}

func (courseCodec) RecordSize() int { return courseRecordSize }

func (courseCodec) MarshalRecord(c models.Course) ([]byte, error) {
	buf := make([]byte, courseRecordSize)
	off := 0
	putFixed(buf[off:off+models.MaxCourseCodeLen], c.CourseCode)
	off += models.MaxCourseCodeLen
	putFixed(buf[off:off+models.MaxNameLen], c.Name)
	off += models.MaxNameLen
	putFixed(buf[off:off+models.MaxIDLen], c.FacultyID)
	off += models.MaxIDLen
	putInt32(buf[off:], c.Credits)
	putInt32(buf[off+4:], c.MaxSeats)
	putInt32(buf[off+8:], c.AvailableSeats)
	return buf, nil
}

func (courseCodec) UnmarshalRecord(data []byte) (models.Course, error) {
	if len(data) != courseRecordSize {
		return models.Course{}, fmt.Errorf("course record: expected %d bytes, got %d", courseRecordSize, len(data))
	}
	off := 0
	course := models.Course{}
	course.CourseCode = getFixed(data[off : off+models.MaxCourseCodeLen])
	off += models.MaxCourseCodeLen
	course.Name = getFixed(data[off : off+models.MaxNameLen])
	off += models.MaxNameLen
	course.FacultyID = getFixed(data[off : off+models.MaxIDLen])
	off += models.MaxIDLen
	course.Credits = getInt32(data[off:])
	course.MaxSeats = getInt32(data[off+4:])
	course.AvailableSeats = getInt32(data[off+8:])
	return course, nil
}

type enrollmentCodec struct{}

func (enrollmentCodec) RecordSize() int { return enrollmentRecordSize }

func (enrollmentCodec) MarshalRecord(e models.Enrollment) ([]byte, error) {
	buf := make([]byte, enrollmentRecordSize)
	putFixed(buf[0:models.MaxIDLen], e.StudentID)
	putFixed(buf[models.MaxIDLen:models.MaxIDLen+models.MaxCourseCodeLen], e.CourseCode)
	enrolled := 0
	if e.IsEnrolled {
		enrolled = 1
	}
	putInt32(buf[enrollmentRecordSize-4:], enrolled)
	return buf, nil
}

func (enrollmentCodec) UnmarshalRecord(data []byte) (models.Enrollment, error) {
	if len(data) != enrollmentRecordSize {
		return models.Enrollment{}, fmt.Errorf("enrollment record: expected %d bytes, got %d", enrollmentRecordSize, len(data))
	}
	return models.Enrollment{
		StudentID:  getFixed(data[0:models.MaxIDLen]),
		CourseCode: getFixed(data[models.MaxIDLen : models.MaxIDLen+models.MaxCourseCodeLen]),
		IsEnrolled: getInt32(data[enrollmentRecordSize-4:]) != 0,
	}, nil
}
