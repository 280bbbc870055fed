package repository

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
}
