package session

import (
	"strconv"
	"strings"
)

// Faculty command codes.
const (
	facultyCmdViewCourses = iota + 1
	facultyCmdAddCourse
	facultyCmdRemoveCourse
	facultyCmdViewEnrollments
	facultyCmdChangePassword
	facultyCmdLogout
)

// facultyLoop runs the faculty command loop until logout or disconnect.
func (s *session) facultyLoop() {
	for {
		choice, ok := s.receiveChoice()
		if !ok {
			return
		}

		var err error
		switch choice {
		case facultyCmdViewCourses:
			err = s.viewOwnedCourses()
		case facultyCmdAddCourse:
			err = s.addCourse()
		case facultyCmdRemoveCourse:
			err = s.removeCourse()
		case facultyCmdViewEnrollments:
			err = s.viewCourseEnrollments()
		case facultyCmdChangePassword:
			err = s.changeFacultyPassword()
		case facultyCmdLogout:
			s.sendLogout()
			return
		default:
			err = s.sendInvalidChoice()
		}

		if err != nil {
			s.logger.Info().Msg("Client disconnected mid-command")
			return
		}
	}
}

func (s *session) viewOwnedCourses() error {
	courses, err := s.d.courses.ListFacultyCourses(s.principal.ID)
	if err != nil {
		return s.send(userMessage(err))
	}
	if len(courses) == 0 {
		return s.send("No courses found.\n")
	}
	return s.send("\n=== Your Courses ===\n" + renderCourseTable(courses, false))
}

func (s *session) addCourse() error {
	courseCode, err := s.prompt("Enter Course Code: ")
	if err != nil {
		return err
	}

	if _, err := s.d.courses.GetCourse(courseCode); err == nil {
		return s.send("Course code already exists!\n")
	}

	name, err := s.prompt("Enter Course Name: ")
	if err != nil {
		return err
	}
	creditsStr, err := s.prompt("Enter Credits: ")
	if err != nil {
		return err
	}
	seatsStr, err := s.prompt("Enter Maximum Seats: ")
	if err != nil {
		return err
	}

	credits, err := strconv.Atoi(strings.TrimSpace(creditsStr))
	if err != nil {
		return s.send("Credits must be a number.\n")
	}
	maxSeats, err := strconv.Atoi(strings.TrimSpace(seatsStr))
	if err != nil {
		return s.send("Maximum seats must be a number.\n")
	}

	if err := s.d.courses.AddCourse(courseCode, name, s.principal.ID, credits, maxSeats); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Course added successfully!\n")
}

func (s *session) removeCourse() error {
	courseCode, err := s.prompt("Enter Course Code to Remove: ")
	if err != nil {
		return err
	}

	if err := s.d.courses.RemoveCourse(courseCode, s.principal.ID); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Course removed successfully.\n")
}

func (s *session) viewCourseEnrollments() error {
	courseCode, err := s.prompt("Enter Course Code: ")
	if err != nil {
		return err
	}

	studentIDs, err := s.d.courses.ListCourseEnrollments(courseCode, s.principal.ID)
	if err != nil {
		return s.send(userMessage(err))
	}
	if len(studentIDs) == 0 {
		return s.send("No enrollments found.\n")
	}

	var b strings.Builder
	b.WriteString("\n=== Enrollments for Course ===\nStudent ID\n")
	for _, id := range studentIDs {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return s.send(b.String())
}

func (s *session) changeFacultyPassword() error {
	newPassword, err := s.prompt("Enter new password: ")
	if err != nil {
		return err
	}

	if err := s.d.faculty.ChangePassword(s.principal.ID, newPassword); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Password changed successfully!\n")
}
