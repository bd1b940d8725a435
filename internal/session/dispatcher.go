// Package session turns one accepted connection into an authenticated,
// role-scoped command loop. A session moves through role selection,
// authentication and a role menu before closing; its control flow is fully
// sequential, with all concurrency living between sessions in the shared
// repositories.
package session

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/academia/internal/app/models"
	"github.com/yigit/academia/internal/app/services"
	"github.com/yigit/academia/internal/transport"
)

// Role selector codes sent as the first message of a session.
const (
	roleSelectorAdmin   = 1
	roleSelectorFaculty = 2
	roleSelectorStudent = 3
)

// Dispatcher drives client sessions against the shared domain services. One
// Dispatcher serves all connections; per-session state lives on the stack of
// Serve.
type Dispatcher struct {
	auth        *services.AuthService
	students    *services.StudentService
	faculty     *services.FacultyService
	courses     *services.CourseService
	enrollments *services.EnrollmentService
	logger      zerolog.Logger
}

// NewDispatcher creates a dispatcher bound to the given services.
func NewDispatcher(
	auth *services.AuthService,
	students *services.StudentService,
	faculty *services.FacultyService,
	courses *services.CourseService,
	enrollments *services.EnrollmentService,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		auth:        auth,
		students:    students,
		faculty:     faculty,
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Serve runs one session to completion. It returns when the client logs
// out, fails a protocol step, or the transport reports a receive failure.
// Internal errors never tear the session down; they degrade to an error
// response and the command loop continues.
func (d *Dispatcher) Serve(conn transport.Conn) {
	defer conn.Close()

	logger := d.logger.With().
		Str("sessionID", uuid.New().String()).
		Str("remoteAddr", conn.RemoteAddr()).
		Logger()
	logger.Info().Msg("Session started")

	msg, err := conn.Receive()
	if err != nil {
		logger.Info().Msg("Client disconnected before role selection")
		return
	}

	selector, err := strconv.Atoi(strings.TrimSpace(msg))
	if err != nil || selector < roleSelectorAdmin || selector > roleSelectorStudent {
		// One shot: a bad selector ends the session, no retry.
		_ = conn.Send("Invalid role selection. Disconnecting...\n")
		logger.Info().Str("selector", msg).Msg("Invalid role selector")
		return
	}

	role := roleForSelector(selector)
	principal, ok := d.authenticate(conn, role, logger)
	if !ok {
		return
	}

	logger = logger.With().
		Str("role", string(principal.Role)).
		Str("principalID", principal.ID).
		Logger()
	logger.Info().Msg("Authenticated")

	s := &session{
		conn:      conn,
		principal: principal,
		d:         d,
		logger:    logger,
	}

	switch principal.Role {
	case models.RoleAdmin:
		s.adminLoop()
	case models.RoleFaculty:
		s.facultyLoop()
	case models.RoleStudent:
		s.studentLoop()
	}

	logger.Info().Msg("Session closed")
}

// authenticate gathers credentials and verifies them. On failure the client
// gets a single undifferentiated notice and the session ends.
func (d *Dispatcher) authenticate(conn transport.Conn, role models.RoleType, logger zerolog.Logger) (models.Principal, bool) {
	id, err := conn.Receive()
	if err != nil {
		logger.Info().Msg("Client disconnected during authentication")
		return models.Principal{}, false
	}
	password, err := conn.Receive()
	if err != nil {
		logger.Info().Msg("Client disconnected during authentication")
		return models.Principal{}, false
	}

	principal, err := d.auth.Authenticate(role, strings.TrimSpace(id), strings.TrimSpace(password))
	if err != nil {
		_ = conn.Send("Authentication failed. Invalid credentials or inactive account.\n")
		logger.Info().Str("role", string(role)).Msg("Authentication failed")
		return models.Principal{}, false
	}

	if err := conn.Send(loginGreeting(role)); err != nil {
		return models.Principal{}, false
	}
	return principal, true
}

func roleForSelector(selector int) models.RoleType {
	switch selector {
	case roleSelectorAdmin:
		return models.RoleAdmin
	case roleSelectorFaculty:
		return models.RoleFaculty
	default:
		return models.RoleStudent
	}
}

func loginGreeting(role models.RoleType) string {
	switch role {
	case models.RoleAdmin:
		return "Admin login successful!\n"
	case models.RoleFaculty:
		return "Faculty login successful!\n"
	default:
		return "Student login successful!\n"
	}
}

// session is the per-connection state shared by the menu loops.
type session struct {
	conn      transport.Conn
	principal models.Principal
	d         *Dispatcher
	logger    zerolog.Logger
}

// receiveChoice reads the next command code. The boolean is false when the
// transport failed and the session must end.
func (s *session) receiveChoice() (int, bool) {
	msg, err := s.conn.Receive()
	if err != nil {
		s.logger.Info().Msg("Client disconnected")
		return 0, false
	}

	choice, err := strconv.Atoi(strings.TrimSpace(msg))
	if err != nil {
		// Non-numeric input is treated like an unknown command code.
		return -1, true
	}
	return choice, true
}

// prompt sends a prompt line and receives the client's answer.
func (s *session) prompt(text string) (string, error) {
	if err := s.conn.Send(text); err != nil {
		return "", err
	}
	answer, err := s.conn.Receive()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// send delivers a final result line for the current command.
func (s *session) send(text string) error {
	return s.conn.Send(text)
}

func (s *session) sendInvalidChoice() error {
	return s.send("Invalid choice. Please try again.\n")
}

func (s *session) sendLogout() {
	_ = s.send("Logging out... Thank You!\n")
}
