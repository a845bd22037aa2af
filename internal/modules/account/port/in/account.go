package in

import (
	"context"

	"studytrack/internal/modules/account/dto"
)

type Usecase interface {
	Register(ctx context.Context, input dto.RegisterInput) (dto.AuthOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.AuthOutput, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to its owner,
	// apperrors.ErrUnauthorized when the token is unknown or expired.
	Authenticate(ctx context.Context, token string) (dto.UserOutput, error)
	ListUsers(ctx context.Context) ([]dto.UserOutput, error)
}
