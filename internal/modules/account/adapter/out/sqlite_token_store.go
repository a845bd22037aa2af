package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studytrack/internal/modules/account/domain"
	accountout "studytrack/internal/modules/account/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteTokenStore struct {
	db *sql.DB
}

func NewSQLiteTokenStore(db *sql.DB) (accountout.TokenStore, error) {
	store := &SQLiteTokenStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTokenStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS auth_tokens (
  token TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  expires_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create auth_tokens table: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Insert(ctx context.Context, token domain.Token) error {
	const stmt = `INSERT INTO auth_tokens (token, user_id, expires_at) VALUES (?, ?, ?)`
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, token.Value, token.UserID, sqlite.FormatTime(token.ExpiresAt)); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Get(ctx context.Context, value string) (domain.Token, error) {
	var (
		token     domain.Token
		expiresAt string
	)
	err := tx.From(ctx, s.db).QueryRowContext(ctx, `SELECT token, user_id, expires_at FROM auth_tokens WHERE token = ?`, value).
		Scan(&token.Value, &token.UserID, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Token{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Token{}, fmt.Errorf("get token: %w", err)
	}
	if token.ExpiresAt, err = sqlite.ParseTime(expiresAt); err != nil {
		return domain.Token{}, err
	}
	return token, nil
}

func (s *SQLiteTokenStore) Delete(ctx context.Context, value string) error {
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM auth_tokens WHERE token = ?`, value); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
