package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studytrack/internal/modules/account/domain"
	accountout "studytrack/internal/modules/account/port/out"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/sqlite"
	"studytrack/internal/platform/tx"
)

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) (accountout.UserStore, error) {
	store := &SQLiteUserStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteUserStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT UNIQUE NOT NULL,
  password_hash TEXT NOT NULL,
  name TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) Insert(ctx context.Context, user domain.User) error {
	const stmt = `INSERT INTO users (id, username, password_hash, name, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		user.ID, user.Username, user.PasswordHash, user.Name, sqlite.FormatTime(user.CreatedAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) Get(ctx context.Context, userID string) (domain.User, error) {
	return s.getBy(ctx, `WHERE id = ?`, userID)
}

func (s *SQLiteUserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.getBy(ctx, `WHERE username = ?`, username)
}

func (s *SQLiteUserStore) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	query := `SELECT id, username, password_hash, name, created_at FROM users ` + where
	var (
		user      domain.User
		createdAt string
	)
	err := tx.From(ctx, s.db).QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if user.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *SQLiteUserStore) List(ctx context.Context) ([]domain.User, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `SELECT id, username, password_hash, name, created_at FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var (
			user      domain.User
			createdAt string
		)
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if user.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
