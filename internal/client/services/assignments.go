package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// AssignmentService serves course handouts. All operations require a
// configured backend; the demo catalog carries no assignments.
type AssignmentService struct {
	api *api.Client
}

func NewAssignmentService(client *api.Client) *AssignmentService {
	return &AssignmentService{api: client}
}

// ForCourse returns the assignments published for courseID.
func (s *AssignmentService) ForCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	res := s.api.Call(ctx, http.MethodGet, "courses/"+courseID+"/assignments", nil)
	assignments, err := api.Decode[[]models.Assignment](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load assignments for course %s: %w", courseID, err)
	}
	return assignments, nil
}

// AssignmentPDFPath returns the backend path serving an assignment's PDF,
// relative to the API base.
func AssignmentPDFPath(id string) string {
	return "assignments/" + id + "/pdf"
}
