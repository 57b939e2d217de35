package cli

import (
	"context"
	"fmt"
	"os"
)

// Courses lists the catalog, marking entries the current user is enrolled in.
func (a *App) Courses(ctx context.Context) error {
	courses, err := a.courses.List(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	for _, c := range courses {
		marker := " "
		if a.coordinator.IsEnrolled(c.ID) {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] %s by %s, %s (%s)", marker, c.ID, c.Title, c.Instructor, c.Duration, c.Level))
	}
	return nil
}

// Enroll enrolls the current user in a course, prompting for the course id
// when it was not given as an argument.
func (a *App) Enroll(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
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

	if a.coordinator.IsEnrolled(courseID) {
		printlnFn("You are already enrolled in this course")
		return nil
	}

	return a.coordinator.EnrollInCourse(ctx, courseID)
}
