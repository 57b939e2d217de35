package cli

import (
	"context"
	"fmt"
)

// Students lists all student accounts with their enrollments (admin only).
func (a *App) Students(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin access required")
		return nil
	}
	if a.students == nil {
		printlnFn("Student listings are unavailable in local mode")
		return nil
	}

	students, err := a.students.AllStudents(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	for _, s := range students {
		printlnFn(fmt.Sprintf("%s <%s>: %d courses, %d results",
			s.Name, s.Email, len(s.EnrolledCourses), len(s.Results)))
	}
	return nil
}

// Dashboard prints the admin summary figures.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin access required")
		return nil
	}
	if a.dashboard == nil {
		printlnFn("The dashboard is unavailable in local mode")
		return nil
	}

	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Courses: %d  Students: %d  Results: %d  Open enrollments: %d",
		stats.TotalCourses, stats.TotalStudents, stats.TotalResults, stats.OpenEnrollments))
	return nil
}
