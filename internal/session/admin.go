package session

import "fmt"

// Admin command codes.
const (
	adminCmdAddStudent = iota + 1
	adminCmdViewStudent
	adminCmdAddFaculty
	adminCmdViewFaculty
	adminCmdActivateStudent
	adminCmdDeactivateStudent
	adminCmdUpdateStudent
	adminCmdUpdateFaculty
	adminCmdLogout
)

// adminLoop runs the admin command loop until logout or disconnect.
func (s *session) adminLoop() {
	for {
		choice, ok := s.receiveChoice()
		if !ok {
			return
		}

		var err error
		switch choice {
		case adminCmdAddStudent:
			err = s.addStudent()
		case adminCmdViewStudent:
			err = s.viewStudent()
		case adminCmdAddFaculty:
			err = s.addFaculty()
		case adminCmdViewFaculty:
			err = s.viewFaculty()
		case adminCmdActivateStudent:
			err = s.setStudentActive(true)
		case adminCmdDeactivateStudent:
			err = s.setStudentActive(false)
		case adminCmdUpdateStudent:
			err = s.updateStudent()
		case adminCmdUpdateFaculty:
			err = s.updateFaculty()
		case adminCmdLogout:
			s.sendLogout()
			return
		default:
			err = s.sendInvalidChoice()
		}

		if err != nil {
			// Transport failure; nothing more can be sent.
			s.logger.Info().Msg("Client disconnected mid-command")
			return
		}
	}
}

func (s *session) addStudent() error {
	studentID, err := s.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}

	if _, err := s.d.students.GetStudent(studentID); err == nil {
		return s.send("Student ID already exists!\n")
	}

	name, err := s.prompt("Enter Student Name: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter Password: ")
	if err != nil {
		return err
	}

	if err := s.d.students.AddStudent(studentID, name, password); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Student added successfully!\n")
}

func (s *session) viewStudent() error {
	studentID, err := s.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}

	student, err := s.d.students.GetStudent(studentID)
	if err != nil {
		return s.send(userMessage(err))
	}

	status := "Inactive"
	if student.IsActive {
		status = "Active"
	}
	return s.send(fmt.Sprintf("\nStudent ID: %s\nName: %s\nStatus: %s\n",
		student.StudentID, student.Name, status))
}

func (s *session) addFaculty() error {
	facultyID, err := s.prompt("Enter Faculty ID: ")
	if err != nil {
		return err
	}

	if _, err := s.d.faculty.GetFaculty(facultyID); err == nil {
		return s.send("Faculty ID already exists!\n")
	}

	name, err := s.prompt("Enter Faculty Name: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter Password: ")
	if err != nil {
		return err
	}

	if err := s.d.faculty.AddFaculty(facultyID, name, password); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Faculty added successfully!\n")
}

func (s *session) viewFaculty() error {
	facultyID, err := s.prompt("Enter Faculty ID: ")
	if err != nil {
		return err
	}

	faculty, err := s.d.faculty.GetFaculty(facultyID)
	if err != nil {
		return s.send(userMessage(err))
	}

	return s.send(fmt.Sprintf("\nFaculty ID: %s\nName: %s\n", faculty.FacultyID, faculty.Name))
}

func (s *session) setStudentActive(active bool) error {
	studentID, err := s.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}

	if err := s.d.students.SetActive(studentID, active); err != nil {
		return s.send(userMessage(err))
	}
	if active {
		return s.send("Student activated successfully.\n")
	}
	return s.send("Student deactivated successfully.\n")
}

func (s *session) updateStudent() error {
	studentID, err := s.prompt("Enter Student ID to update: ")
	if err != nil {
		return err
	}

	if _, err := s.d.students.GetStudent(studentID); err != nil {
		return s.send(userMessage(err))
	}

	name, err := s.prompt("Enter new Name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter new Password (leave blank to keep current): ")
	if err != nil {
		return err
	}

	if err := s.d.students.UpdateStudent(studentID, name, password); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Student updated successfully!\n")
}

func (s *session) updateFaculty() error {
	facultyID, err := s.prompt("Enter Faculty ID to update: ")
	if err != nil {
		return err
	}

	if _, err := s.d.faculty.GetFaculty(facultyID); err != nil {
		return s.send(userMessage(err))
	}

	name, err := s.prompt("Enter new Name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter new Password (leave blank to keep current): ")
	if err != nil {
		return err
	}

	if err := s.d.faculty.UpdateFaculty(facultyID, name, password); err != nil {
		return s.send(userMessage(err))
	}
	return s.send("Faculty updated successfully!\n")
}
