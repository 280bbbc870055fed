package metrics

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// UpsertDaily ingests one district-day record. Re-ingesting the same
	// (district, date) pair overwrites the stored values in place; trends
	// are recomputed against the most recent earlier record each time.
	UpsertDaily(ctx context.Context, sc model.Scope, ip UpsertInput) (MetricOutput, error)

	GetDaily(ctx context.Context, sc model.Scope, ip GetDailyInput) (MetricOutput, error)

	// Series returns per-district chronological series for the requested
	// range, grouped in order of each district's first appearance.
	Series(ctx context.Context, sc model.Scope, ip SeriesInput) ([]model.DistrictSeries, error)
}
