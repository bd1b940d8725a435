package models

// Faculty represents a faculty member account record.
type Faculty struct {
	FacultyID string
	Name      string
	Password  string
}
