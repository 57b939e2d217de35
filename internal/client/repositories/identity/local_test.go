package identity

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/client/session"
	"github.com/alpstech/portal/internal/common"
	"github.com/alpstech/portal/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) (*LocalRepository, session.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE session (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	store := session.NewSQLiteStore(db, logging.Default())
	repo := NewLocalRepository(store)
	repo.newID = func() string { return "generated-id" }
	return repo, store
}

func TestLocalFindByEmail_SeededAccounts(t *testing.T) {
	repo, _ := setupRepo(t)

	reg, err := repo.FindByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	require.Equal(t, "Student User", reg.Name)
	require.Equal(t, "password123", reg.Secret)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLocalFindByEmail_CaseSensitive(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.FindByEmail(context.Background(), "Student@Example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLocalCreate(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	user, err := repo.Create(ctx, models.Registration{
		User: models.User{
			Name:            "Ann",
			Email:           "ann@x.com",
			Role:            models.RoleStudent,
			EnrolledCourses: []string{},
			Results:         []string{},
		},
		Secret: "pw1",
	})
	require.NoError(t, err)
	require.Equal(t, "generated-id", user.ID)

	// The registration is durable and retrievable with its secret.
	reg, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, "generated-id", reg.ID)
	require.Equal(t, "pw1", reg.Secret)
}

func TestLocalCreate_DuplicateEmail(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Create(context.Background(), models.Registration{
		User: models.User{Name: "Impostor", Email: "student@example.com"},
	})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestLocalUpdateEnrollment(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	modified, err := repo.UpdateEnrollment(ctx, "1", "c7")
	require.NoError(t, err)
	require.EqualValues(t, 1, modified)

	reg, err := repo.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	require.Contains(t, reg.EnrolledCourses, "c7")
}

func TestLocalUpdateEnrollment_AlreadyEnrolled(t *testing.T) {
	repo, _ := setupRepo(t)

	// Seeded student is already enrolled in course "2".
	modified, err := repo.UpdateEnrollment(context.Background(), "1", "2")
	require.NoError(t, err)
	require.EqualValues(t, 0, modified)
}

func TestLocalUpdateEnrollment_UnknownUser(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.UpdateEnrollment(context.Background(), "no-such-id", "c7")
	require.ErrorIs(t, err, common.ErrNotFound)
}
