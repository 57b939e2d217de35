package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// StudentService serves the admin views over student accounts.
type StudentService struct {
	api *api.Client
}

func NewStudentService(client *api.Client) *StudentService {
	return &StudentService{api: client}
}

// AllStudents returns every student with joined enrollments and results.
func (s *StudentService) AllStudents(ctx context.Context) ([]models.Student, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/students", nil)
	students, err := api.Decode[[]models.Student](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load students: %w", err)
	}
	return students, nil
}

// Enrollments returns the flat list of (student, course) memberships.
func (s *StudentService) Enrollments(ctx context.Context) ([]models.StudentEnrollment, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/students/enrollments", nil)
	enrollments, err := api.Decode[[]models.StudentEnrollment](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load student enrollments: %w", err)
	}
	return enrollments, nil
}
