package identity

import (
	"context"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// RemoteRepository implements Repository against the remote user service,
// which stays the authoritative owner of every record.
type RemoteRepository struct {
	api *api.Client
}

func NewRemoteRepository(client *api.Client) *RemoteRepository {
	return &RemoteRepository{api: client}
}

func (r *RemoteRepository) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	return r.api.FindUserByEmail(ctx, email)
}

func (r *RemoteRepository) Create(ctx context.Context, reg models.Registration) (*models.User, error) {
	return r.api.CreateUser(ctx, reg)
}

func (r *RemoteRepository) UpdateEnrollment(ctx context.Context, userID, courseID string) (int64, error) {
	return r.api.UpdateEnrollment(ctx, userID, courseID)
}
