package threshold

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (SettingOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (SettingOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Detail(ctx context.Context, sc model.Scope, id string) (SettingOutput, error)
	List(ctx context.Context, sc model.Scope) ([]model.ThresholdSetting, error)

	// Classify places value into the configured band for metricName.
	// Settings are served from the cache when fresh.
	Classify(ctx context.Context, metricName string, value float64) (model.Severity, error)
}
