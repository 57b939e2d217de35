package cli

import (
	"context"
	"fmt"
	"strings"
)

// MyResults lists the logged-in student's graded results.
func (a *App) MyResults(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return nil
	}
	if a.results == nil {
		printlnFn("Results are unavailable in local mode")
		return nil
	}

	results, err := a.results.StudentResults(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	for _, r := range results {
		printlnFn(fmt.Sprintf("%s: %.0f/%.0f (%s) on %s", r.CourseName, r.Score, r.MaxScore, r.Grade, r.Date))
	}
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	user := a.coordinator.CurrentUser()
	if user == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s)", user.Name, user.Email, user.Role))
	if len(user.EnrolledCourses) > 0 {
		printlnFn("Enrolled courses:", strings.Join(user.EnrolledCourses, ", "))
	}
	return nil
}
