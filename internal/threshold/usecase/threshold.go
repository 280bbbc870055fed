package usecase

import (
	"context"

	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold"
	"aquamon-api/internal/threshold/repository"
)

var knownMetrics = map[string]struct{}{
	model.MetricWaterQuality: {},
	model.MetricPressure:     {},
	model.MetricWaterVolume:  {},
	model.MetricEfficiency:   {},
}

func validateBands(pairs ...[2]*float64) error {
	for _, p := range pairs {
		min, max := p[0], p[1]
		if min != nil && max != nil && *min > *max {
			return threshold.ErrInvalidBand
		}
	}
	return nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip threshold.CreateInput) (threshold.SettingOutput, error) {
	if _, ok := knownMetrics[ip.MetricName]; !ok {
		return threshold.SettingOutput{}, threshold.ErrInvalidMetricName
	}
	if err := validateBands(
		[2]*float64{ip.CriticalMin, ip.CriticalMax},
		[2]*float64{ip.WarningMin, ip.WarningMax},
		[2]*float64{ip.GoodMin, ip.GoodMax},
	); err != nil {
		return threshold.SettingOutput{}, err
	}

	setting := model.ThresholdSetting{
		MetricName:  ip.MetricName,
		CriticalMin: ip.CriticalMin,
		CriticalMax: ip.CriticalMax,
		WarningMin:  ip.WarningMin,
		WarningMax:  ip.WarningMax,
		GoodMin:     ip.GoodMin,
		GoodMax:     ip.GoodMax,
		IsEnabled:   ip.IsEnabled,
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Setting: setting})
	if err != nil {
		if err == repository.ErrDuplicate {
			return threshold.SettingOutput{}, threshold.ErrMetricNameExists
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Create: %v", err)
		return threshold.SettingOutput{}, err
	}

	uc.invalidate(ctx, created.MetricName)

	return threshold.SettingOutput{Setting: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip threshold.UpdateInput) (threshold.SettingOutput, error) {
	setting, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return threshold.SettingOutput{}, threshold.ErrSettingNotFound
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Update.Detail: %v", err)
		return threshold.SettingOutput{}, err
	}

	if ip.CriticalMin != nil {
		setting.CriticalMin = ip.CriticalMin
	}
	if ip.CriticalMax != nil {
		setting.CriticalMax = ip.CriticalMax
	}
	if ip.WarningMin != nil {
		setting.WarningMin = ip.WarningMin
	}
	if ip.WarningMax != nil {
		setting.WarningMax = ip.WarningMax
	}
	if ip.GoodMin != nil {
		setting.GoodMin = ip.GoodMin
	}
	if ip.GoodMax != nil {
		setting.GoodMax = ip.GoodMax
	}
	if ip.IsEnabled != nil {
		setting.IsEnabled = *ip.IsEnabled
	}

	if err := validateBands(
		[2]*float64{setting.CriticalMin, setting.CriticalMax},
		[2]*float64{setting.WarningMin, setting.WarningMax},
		[2]*float64{setting.GoodMin, setting.GoodMax},
	); err != nil {
		return threshold.SettingOutput{}, err
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Setting: setting})
	if err != nil {
		if err == repository.ErrNotFound {
			return threshold.SettingOutput{}, threshold.ErrSettingNotFound
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Update: %v", err)
		return threshold.SettingOutput{}, err
	}

	uc.invalidate(ctx, updated.MetricName)

	return threshold.SettingOutput{Setting: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	setting, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return threshold.ErrSettingNotFound
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Delete.Detail: %v", err)
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return threshold.ErrSettingNotFound
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Delete: %v", err)
		return err
	}

	uc.invalidate(ctx, setting.MetricName)

	return nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (threshold.SettingOutput, error) {
	setting, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return threshold.SettingOutput{}, threshold.ErrSettingNotFound
		}
		uc.l.Errorf(ctx, "internal.threshold.usecase.Detail: %v", err)
		return threshold.SettingOutput{}, err
	}

	return threshold.SettingOutput{Setting: setting}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.ThresholdSetting, error) {
	settings, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.threshold.usecase.List: %v", err)
		return nil, err
	}

	return settings, nil
}

func (uc *usecase) Classify(ctx context.Context, metricName string, value float64) (model.Severity, error) {
	setting, err := uc.lookupSetting(ctx, metricName)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.SeverityUnknown, nil
		}
		return model.SeverityUnknown, err
	}

	return setting.Classify(value), nil
}

// lookupSetting serves the setting from the cache when fresh, falling
// back to the database and repopulating the cache on a miss. Cache
// failures degrade to direct reads.
func (uc *usecase) lookupSetting(ctx context.Context, metricName string) (model.ThresholdSetting, error) {
	if uc.cache != nil {
		setting, err := uc.cache.GetSetting(ctx, metricName)
		if err == nil {
			return setting, nil
		}
		if err != repository.ErrCacheMiss {
			uc.l.Warnf(ctx, "internal.threshold.usecase.lookupSetting.GetSetting: %v", err)
		}
	}

	setting, err := uc.repo.GetOne(ctx, model.Scope{}, repository.GetOneOptions{MetricName: metricName})
	if err != nil {
		if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.threshold.usecase.lookupSetting.GetOne: %v", err)
		}
		return model.ThresholdSetting{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetSetting(ctx, setting); err != nil {
			uc.l.Warnf(ctx, "internal.threshold.usecase.lookupSetting.SetSetting: %v", err)
		}
	}

	return setting, nil
}

func (uc *usecase) invalidate(ctx context.Context, metricName string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteSetting(ctx, metricName); err != nil {
		uc.l.Warnf(ctx, "internal.threshold.usecase.invalidate: %v", err)
	}
}
