package repository

import (
	"context"

	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Activity, error)
	Get(ctx context.Context, opts GetOptions) ([]model.Activity, paginator.Paginator, error)
}
