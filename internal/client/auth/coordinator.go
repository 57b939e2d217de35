// Package auth owns the client's identity lifecycle: login, signup, logout
// and enrollment mutation. The coordinator is the only writer of the durable
// session record and publishes every identity change to its subscribers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/client/repositories/identity"
	"github.com/alpstech/portal/internal/client/session"
	"github.com/alpstech/portal/internal/common"
	"github.com/alpstech/portal/internal/logging"
)

// Coordinator composes an identity repository (remote-backed or local) with
// the session store. It rehydrates the last identity at construction and is
// Ready from then on; every operation returns to Ready whatever the outcome.
//
// Operations are not serialized against each other: overlapping calls are
// last-writer-wins, and callers that may overlap mutating operations must
// serialize them. The published identity value itself is guarded, so readers
// never observe a torn value.
type Coordinator struct {
	repo   identity.Repository
	store  session.Store
	notify Notifier
	log    logging.Logger

	mu          sync.Mutex
	user        *models.User
	subscribers []func(*models.User)

	loading atomic.Bool
}

// NewCoordinator builds a coordinator and synchronously rehydrates the
// identity from the session store. A load failure (or malformed record, which
// the store already reports as absent) just means starting unauthenticated.
func NewCoordinator(ctx context.Context, repo identity.Repository, store session.Store, notify Notifier, log logging.Logger) *Coordinator {
	c := &Coordinator{repo: repo, store: store, notify: notify, log: log}

	user, err := store.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load session record, starting unauthenticated", "error", err)
		user = nil
	}
	c.user = user
	return c
}

// CurrentUser returns a copy of the published identity, or nil when no one
// is logged in.
func (c *Coordinator) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user.Clone()
}

// IsLoading reports whether an operation is in flight.
func (c *Coordinator) IsLoading() bool {
	return c.loading.Load()
}

// Subscribe registers fn to be invoked with a copy of the identity after
// every change, including the nil identity published by Logout.
func (c *Coordinator) Subscribe(fn func(*models.User)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Coordinator) publish(user *models.User) {
	c.mu.Lock()
	c.user = user
	subs := slices.Clone(c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(user.Clone())
	}
}

// commit publishes user and persists it as the durable session record. A
// persistence failure only costs the cached session, so it is logged rather
// than surfaced.
func (c *Coordinator) commit(ctx context.Context, user *models.User) {
	c.publish(user)
	if err := c.store.Save(ctx, user); err != nil {
		c.log.Error(ctx, "failed to persist session record", "error", err)
	}
}

// Login authenticates email/secret against the identity repository. On a
// match the secret is stripped, the identity published and persisted. An
// unknown email or wrong secret leaves state untouched and returns
// common.ErrInvalidCredentials after notifying the user.
func (c *Coordinator) Login(ctx context.Context, email, secret string) error {
	c.loading.Store(true)
	defer c.loading.Store(false)

	reg, err := c.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.notify.Error("Invalid email or password")
			return common.ErrInvalidCredentials
		}
		c.log.Error(ctx, "login lookup failed", "email", email, "error", err)
		c.notify.Error("Login failed. Please try again.")
		return fmt.Errorf("login failed: %w", err)
	}

	if reg.Secret != secret {
		c.notify.Error("Invalid email or password")
		return common.ErrInvalidCredentials
	}

	user := reg.User.Clone()
	c.commit(ctx, user)
	c.log.Info(ctx, "login succeeded", "user", user.ID)
	c.notify.Success(fmt.Sprintf("Welcome back, %s!", user.Name))
	return nil
}

// Signup creates a new student account and logs the caller in as it. The
// boolean indicates success so callers can branch without inspecting error
// strings; a taken email produces a distinct notification.
func (c *Coordinator) Signup(ctx context.Context, name, email, secret string) bool {
	c.loading.Store(true)
	defer c.loading.Store(false)

	if _, err := c.repo.FindByEmail(ctx, email); err == nil {
		c.notify.Error("Email already registered. Please use a different email.")
		return false
	} else if !errors.Is(err, common.ErrNotFound) {
		c.log.Error(ctx, "signup lookup failed", "email", email, "error", err)
		c.notify.Error("Registration failed. Please try again.")
		return false
	}

	reg := models.Registration{
		User: models.User{
			Name:            name,
			Email:           email,
			Role:            models.RoleStudent,
			EnrolledCourses: []string{},
			Results:         []string{},
		},
		Secret: secret,
	}

	user, err := c.repo.Create(ctx, reg)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			c.notify.Error("Email already registered. Please use a different email.")
		} else {
			c.log.Error(ctx, "signup failed", "email", email, "error", err)
			c.notify.Error("Registration failed. Please try again.")
		}
		return false
	}

	c.commit(ctx, user)
	c.log.Info(ctx, "signup succeeded", "user", user.ID)
	c.notify.Success(fmt.Sprintf("Welcome to AlpsTech, %s!", name))
	return true
}

// Logout unconditionally clears the in-memory identity and the session
// record. It always succeeds; a store failure is logged only.
func (c *Coordinator) Logout(ctx context.Context) {
	c.loading.Store(true)
	defer c.loading.Store(false)

	c.publish(nil)
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session record", "error", err)
	}
	c.notify.Info("You have been logged out")
}

// EnrollInCourse adds courseID to the current identity's enrolled set,
// remote-first: the repository must acknowledge an actual modification
// before memory and session record advance, so the durable local cache never
// outruns the system of record. With no active identity, or when the course
// is already enrolled, the call is a no-op.
func (c *Coordinator) EnrollInCourse(ctx context.Context, courseID string) error {
	c.loading.Store(true)
	defer c.loading.Store(false)

	current := c.CurrentUser()
	if current == nil {
		return nil
	}
	if current.IsEnrolled(courseID) {
		return nil
	}

	candidate := current.Clone()
	candidate.EnrolledCourses = append(candidate.EnrolledCourses, courseID)

	modified, err := c.repo.UpdateEnrollment(ctx, current.ID, courseID)
	if err != nil {
		c.log.Error(ctx, "enrollment failed", "course", courseID, "error", err)
		c.notify.Error("Enrollment failed. Please try again.")
		return fmt.Errorf("enrollment failed: %w", err)
	}
	if modified == 0 {
		c.notify.Error("Enrollment failed. Please try again.")
		return common.ErrEnrollmentNotApplied
	}

	c.commit(ctx, candidate)
	c.log.Info(ctx, "enrollment succeeded", "user", current.ID, "course", courseID)
	c.notify.Success("You've successfully enrolled in this course!")
	return nil
}

// IsEnrolled is a pure read over the current identity's enrolled set; false
// when no one is logged in.
func (c *Coordinator) IsEnrolled(courseID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user.IsEnrolled(courseID)
}
