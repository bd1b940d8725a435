package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleFaculty RoleType = "FACULTY"
	RoleStudent RoleType = "STUDENT"
)

// Fixed field widths of the on-disk record layout. The data files are raw
// record sequences with no header, so every record of a type must occupy
// exactly the same number of bytes and string fields are NUL-padded to
// these widths.
const (
	MaxIDLen         = 20
	MaxNameLen       = 50
	MaxPasswordLen   = 50
	MaxCourseCodeLen = 10
)

// Principal is the authenticated identity bound to a session.
type Principal struct {
	Role RoleType
	ID   string
}
