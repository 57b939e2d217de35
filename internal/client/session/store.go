// Package session persists the client's durable state: the single-slot
// record of the currently authenticated identity, and (in local-fallback
// mode only) the credential registry used to log in without a backend.
package session

import (
	"context"

	"github.com/alpstech/portal/internal/client/models"
)

// Keys of the two durable records.
const (
	sessionKey  = "user"
	registryKey = "users"
)

// Store is the durable key/value persistence behind the coordinator.
//
// Load returns (nil, nil) when no session record exists or the stored record
// is malformed; a corrupt slot is treated as "no session", never as fatal.
// Save overwrites the one slot; Clear removes it and leaves the registry
// untouched.
//
// The credential methods serve local-fallback mode only. The registry seeds
// itself with two fixed demo identities on first use; ReplaceCredentials
// overwrites it wholesale (used when an existing account gains an
// enrollment).
type Store interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error

	ListCredentials(ctx context.Context) ([]models.Registration, error)
	AppendCredential(ctx context.Context, reg models.Registration) error
	ReplaceCredentials(ctx context.Context, regs []models.Registration) error
}
