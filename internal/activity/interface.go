package activity

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Record appends one audit trail entry. Failures must not affect
	// the operation being recorded; callers treat them as best-effort.
	Record(ctx context.Context, ip RecordInput) error
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
}
