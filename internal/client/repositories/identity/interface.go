// Package identity abstracts where account records live. The coordinator is
// written against Repository alone; one implementation delegates to the
// remote user service, the other to the local-fallback credential registry.
package identity

import (
	"context"

	"github.com/alpstech/portal/internal/client/models"
)

// Repository describes lookup and mutation of account records.
type Repository interface {
	// FindByEmail returns the credential-bearing record for email, or
	// common.ErrNotFound when no such account exists. Email matching is
	// exact (case-sensitive as stored).
	FindByEmail(ctx context.Context, email string) (*models.Registration, error)

	// Create registers a new account and returns the identity with its
	// assigned id. A taken email is reported as common.ErrDuplicateEmail.
	Create(ctx context.Context, reg models.Registration) (*models.User, error)

	// UpdateEnrollment adds courseID to the account's enrolled set and
	// returns how many records were actually modified. Zero means the
	// enrollment did not take effect (e.g. it was already present).
	UpdateEnrollment(ctx context.Context, userID, courseID string) (int64, error)
}
