package models

// Enrollment links a student to a course. A dropped enrollment is kept as an
// inactive row rather than being deleted, so a (student, course) pair may have
// several historical rows but at most one with IsEnrolled set.
type Enrollment struct {
	StudentID  string
	CourseCode string
	IsEnrolled bool
}
