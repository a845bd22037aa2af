package usecase

import (
	"context"

	"studytrack/internal/modules/account/dto"
	accountin "studytrack/internal/modules/account/port/in"
	"studytrack/internal/modules/account/service"
)

type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) accountin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.AuthOutput, error) {
	user, token, err := i.svc.Register(ctx, input.Username, input.Password, input.Name)
	if err != nil {
		return dto.AuthOutput{}, err
	}
	return dto.AuthOutput{UserID: user.ID, Name: user.Name, Token: token.Value}, nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.AuthOutput, error) {
	user, token, err := i.svc.Login(ctx, input.Username, input.Password)
	if err != nil {
		return dto.AuthOutput{}, err
	}
	return dto.AuthOutput{UserID: user.ID, Name: user.Name, Token: token.Value}, nil
}

func (i *Interactor) Logout(ctx context.Context, token string) error {
	return i.svc.Logout(ctx, token)
}

func (i *Interactor) Authenticate(ctx context.Context, token string) (dto.UserOutput, error) {
	user, err := i.svc.Authenticate(ctx, token)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return dto.UserOutput{ID: user.ID, Name: user.Name}, nil
}

func (i *Interactor) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := i.svc.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOutput{ID: u.ID, Name: u.Name})
	}
	return out, nil
}
