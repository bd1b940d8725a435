package models

// Student represents a student account record.
type Student struct {
	StudentID string
	Name      string
	Password  string
	IsActive  bool
}
