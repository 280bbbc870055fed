package repository

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Upsert writes one district-day record in a single statement. An
	// existing (district_id, date) row is overwritten in place, keeping
	// its id and created_at.
	Upsert(ctx context.Context, opts UpsertOptions) (model.DailyMetric, error)

	GetOne(ctx context.Context, opts GetOneOptions) (model.DailyMetric, error)

	// LatestBefore returns the district's most recent record strictly
	// earlier than the given date.
	LatestBefore(ctx context.Context, opts LatestBeforeOptions) (model.DailyMetric, error)

	// QueryRange returns records in [From, To] for the given districts
	// (all districts when empty), ordered by date then insertion order.
	QueryRange(ctx context.Context, opts RangeOptions) ([]model.DailyMetric, error)
}
