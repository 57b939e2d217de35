package identity

import (
	"context"
	"fmt"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/client/session"
	"github.com/alpstech/portal/internal/common"
	"github.com/google/uuid"
)

// LocalRepository implements Repository on the session store's credential
// registry. It exists for local-fallback mode, when no backend is
// configured; ids are synthesized locally.
type LocalRepository struct {
	store session.Store

	// newID is a test seam for id generation.
	newID func() string
}

func NewLocalRepository(store session.Store) *LocalRepository {
	return &LocalRepository{store: store, newID: uuid.NewString}
}

func (r *LocalRepository) FindByEmail(ctx context.Context, email string) (*models.Registration, error) {
	regs, err := r.store.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential registry: %w", err)
	}
	for i := range regs {
		if regs[i].Email == email {
			reg := regs[i]
			return &reg, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *LocalRepository) Create(ctx context.Context, reg models.Registration) (*models.User, error) {
	regs, err := r.store.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential registry: %w", err)
	}
	for i := range regs {
		if regs[i].Email == reg.Email {
			return nil, common.ErrDuplicateEmail
		}
	}

	reg.ID = r.newID()
	if err := r.store.AppendCredential(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}
	return reg.User.Clone(), nil
}

// UpdateEnrollment reports 0 modifications when the course is already in the
// account's enrolled set, matching the remote service's acknowledgment for a
// duplicate enrollment.
func (r *LocalRepository) UpdateEnrollment(ctx context.Context, userID, courseID string) (int64, error) {
	regs, err := r.store.ListCredentials(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read credential registry: %w", err)
	}

	for i := range regs {
		if regs[i].ID != userID {
			continue
		}
		if regs[i].User.IsEnrolled(courseID) {
			return 0, nil
		}
		regs[i].EnrolledCourses = append(regs[i].EnrolledCourses, courseID)
		if err := r.store.ReplaceCredentials(ctx, regs); err != nil {
			return 0, fmt.Errorf("failed to store enrollment: %w", err)
		}
		return 1, nil
	}
	return 0, common.ErrNotFound
}
