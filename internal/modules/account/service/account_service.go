package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studytrack/internal/modules/account/domain"
	accountout "studytrack/internal/modules/account/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/id"
)

type AccountService struct {
	clock      clock.Clock
	idGen      id.Generator
	users      accountout.UserStore
	tokens     accountout.TokenStore
	bcryptCost int
	tokenTTL   time.Duration
}

func NewAccountService(clock clock.Clock, idGen id.Generator, users accountout.UserStore, tokens accountout.TokenStore, bcryptCost, tokenTTLDays int) *AccountService {
	return &AccountService{
		clock:      clock,
		idGen:      idGen,
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		tokenTTL:   time.Duration(tokenTTLDays) * 24 * time.Hour,
	}
}

func (s *AccountService) Register(ctx context.Context, username, password, name string) (domain.User, domain.Token, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, domain.Token{}, apperrors.ErrInvalidInput
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return domain.User{}, domain.Token{}, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.User{}, domain.Token{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, domain.Token{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           s.idGen.New(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		CreatedAt:    s.clock.Now(),
	}
	if err := user.Validate(); err != nil {
		return domain.User{}, domain.Token{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return domain.User{}, domain.Token{}, err
	}
	token, err := s.mint(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Token{}, err
	}
	return user, token, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (domain.User, domain.Token, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.User{}, domain.Token{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, domain.Token{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.Token{}, apperrors.ErrInvalidCredentials
	}
	token, err := s.mint(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Token{}, err
	}
	return user, token, nil
}

func (s *AccountService) mint(ctx context.Context, userID string) (domain.Token, error) {
	token := domain.Token{
		Value:     s.idGen.New(),
		UserID:    userID,
		ExpiresAt: s.clock.Now().Add(s.tokenTTL),
	}
	if err := s.tokens.Insert(ctx, token); err != nil {
		return domain.Token{}, err
	}
	return token, nil
}

func (s *AccountService) Logout(ctx context.Context, value string) error {
	return s.tokens.Delete(ctx, value)
}

func (s *AccountService) Authenticate(ctx context.Context, value string) (domain.User, error) {
	if value == "" {
		return domain.User{}, apperrors.ErrUnauthorized
	}
	token, err := s.tokens.Get(ctx, value)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.User{}, apperrors.ErrUnauthorized
	}
	if err != nil {
		return domain.User{}, err
	}
	if token.Expired(s.clock.Now()) {
		return domain.User{}, apperrors.ErrUnauthorized
	}
	return s.users.Get(ctx, token.UserID)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
