package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alpstech/portal/internal/client/services"
)

// Assignments lists the handouts for a course, prompting for the course id
// when it was not given as an argument.
func (a *App) Assignments(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return nil
	}
	if a.assignments == nil {
		printlnFn("Assignments are unavailable in local mode")
		return nil
	}

	var courseID string
	if len(args) > 0 {
		courseID = args[0]
	} else {
		id, err := GetSimpleText(a.reader, "Enter course id", os.Stdout)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		courseID = id
	}

	assignments, err := a.assignments.ForCourse(ctx, courseID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(assignments) == 0 {
		printlnFn("No assignments for this course yet")
		return nil
	}

	for _, asg := range assignments {
		printlnFn(fmt.Sprintf("[%s] %s: %s (pdf: %s)", asg.ID, asg.Title, asg.Description, services.AssignmentPDFPath(asg.ID)))
	}
	return nil
}
