package session

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yigit/academia/internal/app/models"
)

// renderCourseTable formats courses as a text table for a single response
// message. withFaculty adds the owning faculty column used in the student
// catalogue view.
func renderCourseTable(courses []models.Course, withFaculty bool) string {
	var b strings.Builder

	table := tablewriter.NewWriter(&b)
	if withFaculty {
		table.SetHeader([]string{"Code", "Name", "Faculty", "Credits", "Available Seats"})
	} else {
		table.SetHeader([]string{"Code", "Name", "Credits", "Available Seats"})
	}
	table.SetBorder(false)

	for _, c := range courses {
		if withFaculty {
			table.Append([]string{
				c.CourseCode,
				c.Name,
				c.FacultyID,
				strconv.Itoa(c.Credits),
				strconv.Itoa(c.AvailableSeats),
			})
		} else {
			table.Append([]string{
				c.CourseCode,
				c.Name,
				strconv.Itoa(c.Credits),
				strconv.Itoa(c.AvailableSeats),
			})
		}
	}

	table.Render()
	return b.String()
}
