package session

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academia/internal/app/repositories"
	"github.com/yigit/academia/internal/app/services"
)

// scriptedConn feeds a fixed sequence of client messages and records
// everything the server sends back. A drained script behaves like a peer
// that hung up.
type scriptedConn struct {
	incoming []string
	pos      int
	sent     []string
	closed   bool
}

func (c *scriptedConn) Send(msg string) error {
	c.sent = append(c.sent, msg)
	return nil
}

func (c *scriptedConn) Receive() (string, error) {
	if c.pos >= len(c.incoming) {
		return "", io.EOF
	}
	msg := c.incoming[c.pos]
	c.pos++
	return msg, nil
}

func (c *scriptedConn) Close() error {
	c.closed = true
	return nil
}

func (c *scriptedConn) RemoteAddr() string {
	return "test:0"
}

type fixture struct {
	dispatcher  *Dispatcher
	students    *services.StudentService
	faculty     *services.FacultyService
	courses     *services.CourseService
	enrollments *services.EnrollmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repos, err := repositories.NewRepositories(t.TempDir())
	require.NoError(t, err)

	lgr := zerolog.Nop()
	auth := services.NewAuthService(repos.StudentRepository, repos.FacultyRepository,
		services.AdminCredentials{ID: "admin", Password: "admin123"}, lgr)
	students := services.NewStudentService(repos.StudentRepository, lgr)
	faculty := services.NewFacultyService(repos.FacultyRepository, lgr)
	courses := services.NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, lgr)
	enrollments := services.NewEnrollmentService(repos.CourseRepository, repos.EnrollmentRepository, lgr)

	return &fixture{
		dispatcher:  NewDispatcher(auth, students, faculty, courses, enrollments, lgr),
		students:    students,
		faculty:     faculty,
		courses:     courses,
		enrollments: enrollments,
	}
}

// run scripts one full session and returns everything the server sent.
func (f *fixture) run(t *testing.T, incoming ...string) *scriptedConn {
	t.Helper()
	conn := &scriptedConn{incoming: incoming}
	f.dispatcher.Serve(conn)
	assert.True(t, conn.closed, "Serve must close the connection")
	return conn
}

func TestServeRoleSelection(t *testing.T) {
	t.Run("non-numeric selector disconnects", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t, "abc")
		require.Len(t, conn.sent, 1)
		assert.Equal(t, "Invalid role selection. Disconnecting...\n", conn.sent[0])
	})

	t.Run("out of range selector disconnects", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t, "7")
		require.Len(t, conn.sent, 1)
		assert.Equal(t, "Invalid role selection. Disconnecting...\n", conn.sent[0])
	})

	t.Run("hang up before selection sends nothing", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t)
		assert.Empty(t, conn.sent)
	})
}

func TestServeAuthentication(t *testing.T) {
	t.Run("bad admin credentials end the session with one notice", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t, "1", "admin", "wrong")
		require.Len(t, conn.sent, 1)
		assert.Equal(t, "Authentication failed. Invalid credentials or inactive account.\n", conn.sent[0])
	})

	t.Run("unknown student gets the same notice as a bad password", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S001", "Ada", "pw"))

		unknown := f.run(t, "3", "S404", "pw")
		badPw := f.run(t, "3", "S001", "nope")

		require.Len(t, unknown.sent, 1)
		require.Len(t, badPw.sent, 1)
		assert.Equal(t, unknown.sent[0], badPw.sent[0])
	})

	t.Run("inactive student cannot log in", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S001", "Ada", "pw"))
		require.NoError(t, f.students.SetActive("S001", false))

		conn := f.run(t, "3", "S001", "pw")
		require.Len(t, conn.sent, 1)
		assert.Equal(t, "Authentication failed. Invalid credentials or inactive account.\n", conn.sent[0])
	})

	t.Run("successful login greets by role", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t, "1", "admin", "admin123", "9")
		require.NotEmpty(t, conn.sent)
		assert.Equal(t, "Admin login successful!\n", conn.sent[0])
		assert.Equal(t, "Logging out... Thank You!\n", conn.sent[len(conn.sent)-1])
	})
}

func TestAdminSession(t *testing.T) {
	t.Run("add student walks the prompts and persists", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t,
			"1", "admin", "admin123",
			"1", "S010", "Ada Lovelace", "engine",
			"9",
		)

		assert.Equal(t, []string{
			"Admin login successful!\n",
			"Enter Student ID: ",
			"Enter Student Name: ",
			"Enter Password: ",
			"Student added successfully!\n",
			"Logging out... Thank You!\n",
		}, conn.sent)

		student, err := f.students.GetStudent("S010")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", student.Name)
		assert.True(t, student.IsActive)
	})

	t.Run("duplicate student ID is refused at the first prompt", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S010", "Ada", "pw"))

		conn := f.run(t,
			"1", "admin", "admin123",
			"1", "S010",
			"9",
		)

		assert.Contains(t, conn.sent, "Student ID already exists!\n")
		assert.NotContains(t, conn.sent, "Enter Student Name: ")
	})

	t.Run("view student reports status", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S010", "Ada Lovelace", "pw"))
		require.NoError(t, f.students.SetActive("S010", false))

		conn := f.run(t,
			"1", "admin", "admin123",
			"2", "S010",
			"9",
		)

		assert.Contains(t, conn.sent, "\nStudent ID: S010\nName: Ada Lovelace\nStatus: Inactive\n")
	})

	t.Run("deactivate then reactivate through the menu", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S010", "Ada", "pw"))

		conn := f.run(t,
			"1", "admin", "admin123",
			"6", "S010",
			"5", "S010",
			"9",
		)

		assert.Contains(t, conn.sent, "Student deactivated successfully.\n")
		assert.Contains(t, conn.sent, "Student activated successfully.\n")

		student, err := f.students.GetStudent("S010")
		require.NoError(t, err)
		assert.True(t, student.IsActive)
	})

	t.Run("update student keeps blank fields", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.students.AddStudent("S010", "Ada", "pw"))

		conn := f.run(t,
			"1", "admin", "admin123",
			"7", "S010", "Countess Lovelace", "",
			"9",
		)

		assert.Contains(t, conn.sent, "Student updated successfully!\n")

		student, err := f.students.GetStudent("S010")
		require.NoError(t, err)
		assert.Equal(t, "Countess Lovelace", student.Name)
		assert.Equal(t, "pw", student.Password)
	})

	t.Run("invalid choice re-loops", func(t *testing.T) {
		f := newFixture(t)
		conn := f.run(t,
			"1", "admin", "admin123",
			"42",
			"banana",
			"9",
		)

		assert.Equal(t, []string{
			"Admin login successful!\n",
			"Invalid choice. Please try again.\n",
			"Invalid choice. Please try again.\n",
			"Logging out... Thank You!\n",
		}, conn.sent)
	})
}

func TestFacultySession(t *testing.T) {
	seedFaculty := func(t *testing.T, f *fixture) {
		t.Helper()
		require.NoError(t, f.faculty.AddFaculty("F001", "Grace Hopper", "pw"))
	}

	t.Run("add course walks the prompts and persists", func(t *testing.T) {
		f := newFixture(t)
		seedFaculty(t, f)

		conn := f.run(t,
			"2", "F001", "pw",
			"2", "CS101", "Intro to Programming", "4", "30",
			"6",
		)

		assert.Contains(t, conn.sent, "Course added successfully!\n")

		course, err := f.courses.GetCourse("CS101")
		require.NoError(t, err)
		assert.Equal(t, "F001", course.FacultyID)
		assert.Equal(t, 30, course.AvailableSeats)
	})

	t.Run("remove course owned by another faculty is refused", func(t *testing.T) {
		f := newFixture(t)
		seedFaculty(t, f)
		require.NoError(t, f.faculty.AddFaculty("F002", "Donald Knuth", "pw"))
		require.NoError(t, f.courses.AddCourse("CS101", "Intro", "F002", 3, 10))

		conn := f.run(t,
			"2", "F001", "pw",
			"3", "CS101",
			"6",
		)

		assert.Contains(t, conn.sent, "Course not found or you don't own this course.\n")

		_, err := f.courses.GetCourse("CS101")
		assert.NoError(t, err)
	})

	t.Run("roster lists enrolled students", func(t *testing.T) {
		f := newFixture(t)
		seedFaculty(t, f)
		require.NoError(t, f.courses.AddCourse("CS101", "Intro", "F001", 3, 10))
		require.NoError(t, f.students.AddStudent("S001", "Ada", "pw"))
		require.NoError(t, f.enrollments.Enroll("S001", "CS101"))

		conn := f.run(t,
			"2", "F001", "pw",
			"4", "CS101",
			"6",
		)

		var roster string
		for _, msg := range conn.sent {
			if len(msg) > 0 && msg[0] == '\n' {
				roster = msg
			}
		}
		assert.Contains(t, roster, "S001")
	})
}

func TestStudentSession(t *testing.T) {
	seed := func(t *testing.T, f *fixture, seats int) {
		t.Helper()
		require.NoError(t, f.faculty.AddFaculty("F001", "Grace Hopper", "pw"))
		require.NoError(t, f.courses.AddCourse("CS101", "Intro", "F001", 3, seats))
		require.NoError(t, f.students.AddStudent("S001", "Ada", "pw"))
	}

	t.Run("enroll then view then drop", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, 5)

		conn := f.run(t,
			"3", "S001", "pw",
			"2", "CS101",
			"4",
			"3", "CS101",
			"4",
			"6",
		)

		assert.Contains(t, conn.sent, "Enrolled in course successfully!\n")
		assert.Contains(t, conn.sent, "Course dropped successfully!\n")
		assert.Contains(t, conn.sent, "\n=== Enrolled Courses ===\nCourse Code\nCS101\n")
		assert.Contains(t, conn.sent, "No enrolled courses found.\n")

		course, err := f.courses.GetCourse("CS101")
		require.NoError(t, err)
		assert.Equal(t, 5, course.AvailableSeats)
	})

	t.Run("double enrollment reports already enrolled", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, 5)

		conn := f.run(t,
			"3", "S001", "pw",
			"2", "CS101",
			"2", "CS101",
			"6",
		)

		assert.Contains(t, conn.sent, "You are already enrolled in this course.\n")
	})

	t.Run("full course reports no seats", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, 1)
		require.NoError(t, f.students.AddStudent("S002", "Alan", "pw"))
		require.NoError(t, f.enrollments.Enroll("S002", "CS101"))

		conn := f.run(t,
			"3", "S001", "pw",
			"2", "CS101",
			"6",
		)

		assert.Contains(t, conn.sent, "No available seats in this course.\n")
	})

	t.Run("full course disappears from the available listing", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, 1)
		require.NoError(t, f.enrollments.Enroll("S001", "CS101"))

		conn := f.run(t,
			"3", "S001", "pw",
			"1",
			"6",
		)

		assert.Contains(t, conn.sent, "No available courses found.\n")
	})

	t.Run("change password takes effect for the next session", func(t *testing.T) {
		f := newFixture(t)
		seed(t, f, 5)

		f.run(t,
			"3", "S001", "pw",
			"5", "newpw",
			"6",
		)

		oldPw := f.run(t, "3", "S001", "pw")
		assert.Equal(t, "Authentication failed. Invalid credentials or inactive account.\n", oldPw.sent[0])

		newPw := f.run(t, "3", "S001", "newpw")
		assert.Equal(t, "Student login successful!\n", newPw.sent[0])
	})
}
