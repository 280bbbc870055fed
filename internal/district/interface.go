package district

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (DistrictOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (DistrictOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DistrictOutput, error)
	List(ctx context.Context, sc model.Scope) ([]model.District, error)
}
