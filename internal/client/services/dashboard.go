package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// DashboardService serves the admin landing-page aggregates.
type DashboardService struct {
	api *api.Client
}

func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{api: client}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/dashboard/stats", nil)
	stats, err := api.Decode[models.DashboardStats](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load dashboard stats: %w", err)
	}
	return &stats, nil
}

func (s *DashboardService) RecentEnrollments(ctx context.Context) ([]models.RecentEnrollment, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/dashboard/recent-enrollments", nil)
	enrollments, err := api.Decode[[]models.RecentEnrollment](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load recent enrollments: %w", err)
	}
	return enrollments, nil
}

func (s *DashboardService) LatestResults(ctx context.Context) ([]models.LatestResult, error) {
	res := s.api.Call(ctx, http.MethodGet, "admin/dashboard/latest-results", nil)
	results, err := api.Decode[[]models.LatestResult](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load latest results: %w", err)
	}
	return results, nil
}
