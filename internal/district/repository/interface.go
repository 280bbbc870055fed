package repository

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.District, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.District, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.District, error)
	List(ctx context.Context, sc model.Scope) ([]model.District, error)
}
