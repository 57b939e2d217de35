package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// ResultService serves graded results: the student's own list plus the admin
// CRUD surface. All operations require a configured backend.
type ResultService struct {
	api *api.Client
}

func NewResultService(client *api.Client) *ResultService {
	return &ResultService{api: client}
}

// StudentResults returns the results of the calling student. The backend
// scopes the list by the bearer credential the gateway attaches.
func (s *ResultService) StudentResults(ctx context.Context) ([]models.Result, error) {
	res := s.api.Call(ctx, http.MethodGet, "student/results", nil)
	results, err := api.Decode[[]models.Result](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load your results: %w", err)
	}
	return results, nil
}

// AllResults returns every recorded result (admin).
func (s *ResultService) AllResults(ctx context.Context) ([]models.Result, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/results", nil)
	results, err := api.Decode[[]models.Result](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load results: %w", err)
	}
	return results, nil
}

// GetResult returns one result by id (admin).
func (s *ResultService) GetResult(ctx context.Context, id string) (*models.Result, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/results/"+id, nil)
	result, err := api.Decode[models.Result](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load result %s: %w", id, err)
	}
	return &result, nil
}

// CreateResult records a new result (admin).
func (s *ResultService) CreateResult(ctx context.Context, result models.Result) (*models.Result, error) {
	res := s.api.Call(ctx, http.MethodPost, "admin/results", result)
	created, err := api.Decode[models.Result](res)
	if err != nil {
		return nil, fmt.Errorf("unable to create result: %w", err)
	}
	return &created, nil
}

// UpdateResult applies a partial update to an existing result (admin).
func (s *ResultService) UpdateResult(ctx context.Context, id string, fields map[string]any) (*models.Result, error) {
	res := s.api.Call(ctx, http.MethodPatch, "admin/results/"+id, fields)
	updated, err := api.Decode[models.Result](res)
	if err != nil {
		return nil, fmt.Errorf("unable to update result %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteResult removes a result (admin).
func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	res := s.api.Call(ctx, http.MethodDelete, "admin/results/"+id, nil)
	if err := res.Err(); err != nil {
		return fmt.Errorf("unable to delete result %s: %w", id, err)
	}
	return nil
}
