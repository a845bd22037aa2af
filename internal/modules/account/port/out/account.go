package out

import (
	"context"

	"studytrack/internal/modules/account/domain"
)

type UserStore interface {
	Insert(ctx context.Context, user domain.User) error
	Get(ctx context.Context, userID string) (domain.User, error)
	// GetByUsername returns apperrors.ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type TokenStore interface {
	Insert(ctx context.Context, token domain.Token) error
	Get(ctx context.Context, value string) (domain.Token, error)
	Delete(ctx context.Context, value string) error
}
