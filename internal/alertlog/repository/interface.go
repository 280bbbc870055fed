package repository

import (
	"context"

	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.LogEntry, error)
	Detail(ctx context.Context, kind model.LogKind, id string) (model.LogEntry, error)
	Get(ctx context.Context, opts GetOptions) ([]model.LogEntry, paginator.Paginator, error)

	// SetResolution flips the resolution state in a single statement and
	// returns the updated entry. Resolving always re-stamps resolved_by
	// and resolved_at; reopening clears both.
	SetResolution(ctx context.Context, opts ResolutionOptions) (model.LogEntry, error)
}
