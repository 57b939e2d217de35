package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/common"
)

// CreateUser registers a new account with the backend and returns the created
// identity including its assigned id. A duplicate email is reported as
// common.ErrDuplicateEmail.
func (c *Client) CreateUser(ctx context.Context, reg models.Registration) (*models.User, error) {
	res := c.Call(ctx, http.MethodPost, "users", reg)
	if !res.Success {
		if res.Status == http.StatusConflict || strings.Contains(res.Error, "already exists") {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", res.Err())
	}

	user, err := Decode[models.User](res)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("user created but no id returned")
	}
	return &user, nil
}

// FindUserByEmail looks up the credential-bearing record for email. Only a
// successful response carrying no record is reported as common.ErrNotFound; a
// failed call (transport error, bad status, failure envelope) surfaces as a
// plain error so callers can tell a missing account from an unreachable
// backend.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*models.Registration, error) {
	res := c.Call(ctx, http.MethodGet, "users", map[string]string{"email": email})
	if !res.Success {
		return nil, fmt.Errorf("failed to find user: %w", res.Err())
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return nil, common.ErrNotFound
	}

	reg, err := Decode[models.Registration](res)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &reg, nil
}

// enrollmentAck is the backend's acknowledgment of an enrollment update.
type enrollmentAck struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// UpdateEnrollment asks the backend to add courseID to the user's enrolled
// set and returns the number of records actually modified. Zero means the
// update did not take effect and nothing may be committed locally.
func (c *Client) UpdateEnrollment(ctx context.Context, userID, courseID string) (int64, error) {
	path := fmt.Sprintf("users/%s/enroll", userID)
	res := c.Call(ctx, http.MethodPatch, path, map[string]string{"courseId": courseID})

	ack, err := Decode[enrollmentAck](res)
	if err != nil {
		return 0, fmt.Errorf("failed to update enrollment: %w", err)
	}
	return ack.ModifiedCount, nil
}

// TestConnection checks backend reachability. Any failure is reported as
// common.ErrUnavailable.
func (c *Client) TestConnection(ctx context.Context) error {
	res := c.Call(ctx, http.MethodGet, "test-connection", nil)
	if !res.Success {
		return fmt.Errorf("%w: %s", common.ErrUnavailable, res.Error)
	}
	return nil
}
