package models

// Course represents a course offered by a faculty member.
// AvailableSeats always satisfies 0 <= AvailableSeats <= MaxSeats.
type Course struct {
	CourseCode     string
	Name           string
	FacultyID      string
	Credits        int
	MaxSeats       int
	AvailableSeats int
}
