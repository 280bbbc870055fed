package user

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (UserOutput, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
}
