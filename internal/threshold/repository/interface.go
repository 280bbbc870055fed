package repository

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.ThresholdSetting, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.ThresholdSetting, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Detail(ctx context.Context, sc model.Scope, id string) (model.ThresholdSetting, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.ThresholdSetting, error)
	List(ctx context.Context, sc model.Scope) ([]model.ThresholdSetting, error)
}

// Cache is a read-through cache for settings keyed by metric name.
// Misses return ErrCacheMiss; stale entries are evicted on mutation.
type Cache interface {
	GetSetting(ctx context.Context, metricName string) (model.ThresholdSetting, error)
	SetSetting(ctx context.Context, setting model.ThresholdSetting) error
	DeleteSetting(ctx context.Context, metricName string) error
}
