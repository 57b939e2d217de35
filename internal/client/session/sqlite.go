package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alpstech/portal/internal/client/models"
	"github.com/alpstech/portal/internal/dbx"
	"github.com/alpstech/portal/internal/logging"
)

// SQLiteStore implements Store on a local SQLite database holding a small
// key/value table.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// NewSQLiteStore returns a SQLiteStore bound to the given database. The
// schema must already be in place (see InitDatabase).
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load deserializes the durable session record. An absent or malformed
// record yields (nil, nil): the caller proceeds without a session.
func (s *SQLiteStore) Load(ctx context.Context) (*models.User, error) {
	raw, err := s.get(ctx, s.db, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "discarding malformed session record", "error", err)
		return nil, nil
	}
	return &user, nil
}

// Save overwrites the single session slot with the given identity.
func (s *SQLiteStore) Save(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	return s.set(ctx, s.db, sessionKey, raw)
}

// Clear removes the session slot. The credential registry is not touched.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// ListCredentials returns the local-fallback registry, seeding it with the
// demo accounts the first time it is read.
func (s *SQLiteStore) ListCredentials(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		loaded, err := s.listCredentials(ctx, tx)
		if err != nil {
			return err
		}
		if loaded == nil {
			loaded = seedRegistrations()
			if err := s.saveCredentials(ctx, tx, loaded); err != nil {
				return err
			}
			s.log.Info(ctx, "seeded local credential registry", "accounts", len(loaded))
		}
		regs = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// AppendCredential adds one registration to the registry, seeding first if
// the registry does not exist yet.
func (s *SQLiteStore) AppendCredential(ctx context.Context, reg models.Registration) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		regs, err := s.listCredentials(ctx, tx)
		if err != nil {
			return err
		}
		if regs == nil {
			regs = seedRegistrations()
		}
		regs = append(regs, reg)
		return s.saveCredentials(ctx, tx, regs)
	})
}

// ReplaceCredentials overwrites the registry wholesale.
func (s *SQLiteStore) ReplaceCredentials(ctx context.Context, regs []models.Registration) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.saveCredentials(ctx, tx, regs)
	})
}

// listCredentials returns nil (no error) when the registry record is absent.
func (s *SQLiteStore) listCredentials(ctx context.Context, q dbx.DBTX) ([]models.Registration, error) {
	raw, err := s.get(ctx, q, registryKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var regs []models.Registration
	if err := json.Unmarshal(raw, &regs); err != nil {
		return nil, fmt.Errorf("failed to decode credential registry: %w", err)
	}
	return regs, nil
}

func (s *SQLiteStore) saveCredentials(ctx context.Context, q dbx.DBTX, regs []models.Registration) error {
	raw, err := json.Marshal(regs)
	if err != nil {
		return fmt.Errorf("failed to encode credential registry: %w", err)
	}
	return s.set(ctx, q, registryKey, raw)
}
