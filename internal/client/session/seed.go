package session

import "github.com/alpstech/portal/internal/client/models"

// seedRegistrations returns the demo accounts the local-fallback registry is
// seeded with on first use: one student with a few enrollments and results,
// and one admin.
func seedRegistrations() []models.Registration {
	return []models.Registration{
		{
			User: models.User{
				ID:              "1",
				Name:            "Student User",
				Email:           "student@example.com",
				Role:            models.RoleStudent,
				EnrolledCourses: []string{"1", "2", "5"},
				Results:         []string{"1", "2", "3"},
			},
			Secret: "password123",
		},
		{
			User: models.User{
				ID:              "2",
				Name:            "Admin User",
				Email:           "admin@example.com",
				Role:            models.RoleAdmin,
				EnrolledCourses: []string{},
				Results:         []string{},
			},
			Secret: "admin123",
		},
	}
}
