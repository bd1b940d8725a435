package session

import "strings"

// Student command codes.
const (
	studentCmdViewCourses = iota + 1
	studentCmdEnroll
	studentCmdDrop
	studentCmdViewEnrolled
	studentCmdChangePassword
	studentCmdLogout
)

// studentLoop runs the student command loop until logout or disconnect.
func (s *session) studentLoop() {
	for {
		choice, ok := s.receiveChoice()
		if !ok {
			return
		}

		var err error
		switch choice {
		case studentCmdViewCourses:
			err = s.viewAvailableCourses()
		case studentCmdEnroll:
			err = s.enrollCourse()
		case studentCmdDrop:
			err = s.dropCourse()
		case studentCmdViewEnrolled:
			err = s.viewEnrolledCourses()
		case studentCmdChangePassword:
			err = s.changeStudentPassword()
		case studentCmdLogout:
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

func (s *session) viewAvailableCourses() error {
	courses, err := s.d.courses.ListAvailableCourses()
	if err != nil {
		return s.send(userMessage(err))
	}
	if len(courses) == 0 {
		return s.send("No available courses found.\n")
	}
	return s.send("\n=== Available Courses ===\n" + renderCourseTable(courses, true))
}

func (s *session) enrollCourse() error {
	courseCode, err := s.prompt("Enter Course Code to enroll: ")
	if err != nil {
		return err
	}

	if err := s.d.enrollments.Enroll(s.principal.ID, courseCode); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Enrolled in course successfully!\n")
}

func (s *session) dropCourse() error {
	courseCode, err := s.prompt("Enter Course Code to drop: ")
	if err != nil {
		return err
	}

	if err := s.d.enrollments.Drop(s.principal.ID, courseCode); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Course dropped successfully!\n")
}

func (s *session) viewEnrolledCourses() error {
	codes, err := s.d.enrollments.ListEnrolledCourses(s.principal.ID)
	if err != nil {
		return s.send(userMessage(err))
	}
	if len(codes) == 0 {
		return s.send("No enrolled courses found.\n")
	}

	var b strings.Builder
	b.WriteString("\n=== Enrolled Courses ===\nCourse Code\n")
	for _, code := range codes {
		b.WriteString(code)
		b.WriteByte('\n')
	}
	return s.send(b.String())
}

func (s *session) changeStudentPassword() error {
	newPassword, err := s.prompt("Enter new password: ")
	if err != nil {
		return err
	}

	if err := s.d.students.ChangePassword(s.principal.ID, newPassword); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Password changed successfully!\n")
}
