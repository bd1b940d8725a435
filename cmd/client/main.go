package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yigit/academia/internal/transport"
)

const (
	studentMenu = `
------ Student Menu ------
1. View All Courses
2. Enroll in New Course
3. Drop Course
4. View Enrolled Courses
5. Change Password
6. Logout`

	facultyMenu = `
------ Faculty Menu ------
1. View Offering Courses
2. Add New Course
3. Remove Course
4. View Course Enrollments
5. Change Password
6. Logout`

	adminMenu = `
------ Admin Menu ------
1. Add Student
2. View Student Details
3. Add Faculty
4. View Faculty Details
5. Activate Student
6. Block Student
7. Modify Student Details
8. Modify Faculty Details
9. Logout`
)

var addr string

var rootCmd = &cobra.Command{
	Use:   "academia-client",
	Short: "Interactive terminal client for the Academia record server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(addr)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "server address")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(addr string) error {
	netConn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	conn := transport.NewConn(netConn)
	defer conn.Close()
	color.Green("Connected to server at %s", addr)

	stdin := bufio.NewScanner(os.Stdin)

	color.Cyan("---------------Welcome to Academia---------------")
	roleChoice := readLine(stdin, "Enter your choice {1.Admin, 2.Faculty, 3.Student}: ")
	if err := conn.Send(roleChoice); err != nil {
		return err
	}

	if err := authenticate(conn, stdin); err != nil {
		return err
	}

	var menu string
	switch roleChoice {
	case "1":
		menu = adminMenu
	case "2":
		menu = facultyMenu
	case "3":
		menu = studentMenu
	default:
		return fmt.Errorf("invalid role selection")
	}

	return commandLoop(conn, stdin, menu)
}

// authenticate sends the credential pair and prints the server's verdict.
// The password is read without echo.
func authenticate(conn transport.Conn, stdin *bufio.Scanner) error {
	id := readLine(stdin, "Enter ID: ")
	if err := conn.Send(id); err != nil {
		return err
	}

	fmt.Print("Enter Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if err := conn.Send(strings.TrimSpace(string(password))); err != nil {
		return err
	}

	response, err := conn.Receive()
	if err != nil {
		return err
	}
	if !strings.Contains(response, "successful") {
		color.Red("%s", strings.TrimSpace(response))
		return fmt.Errorf("authentication failed")
	}

	color.Green("%s", strings.TrimSpace(response))
	return nil
}

// commandLoop shows the role menu, forwards the chosen command and then
// relays the server's dialogue: any line asking for input ("Enter ...") is
// answered from stdin, any other line completes the command.
func commandLoop(conn transport.Conn, stdin *bufio.Scanner, menu string) error {
	for {
		color.Cyan("%s", menu)
		choice := readLine(stdin, "Enter your choice: ")
		if err := conn.Send(choice); err != nil {
			return err
		}

		for {
			response, err := conn.Receive()
			if err != nil {
				return fmt.Errorf("connection lost: %w", err)
			}

			if strings.Contains(response, "Logging out") {
				color.Green("%s", strings.TrimSpace(response))
				return nil
			}

			if strings.Contains(response, "Enter") {
				answer := readLine(stdin, response)
				if err := conn.Send(answer); err != nil {
					return err
				}
				continue
			}

			fmt.Print(response)
			break
		}
	}
}

// readLine prints a prompt and reads one trimmed line from stdin.
func readLine(stdin *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !stdin.Scan() {
		return ""
	}
	return strings.TrimSpace(stdin.Text())
}
