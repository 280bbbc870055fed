package usecase

import (
	"context"
	"fmt"
	"math"

	"aquamon-api/internal/activity"
	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/metrics"
	"aquamon-api/internal/metrics/repository"
	"aquamon-api/internal/model"
)

func validateValues(ip metrics.UpsertInput) error {
	for _, v := range []float64{ip.WaterQuality, ip.Pressure, ip.WaterVolume, ip.Efficiency} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return metrics.ErrInvalidValue
		}
	}
	return nil
}

func (uc *usecase) UpsertDaily(ctx context.Context, sc model.Scope, ip metrics.UpsertInput) (metrics.MetricOutput, error) {
	if ip.Date.IsZero() {
		return metrics.MetricOutput{}, metrics.ErrMissingDate
	}
	if err := validateValues(ip); err != nil {
		return metrics.MetricOutput{}, err
	}

	date := truncateToDay(ip.Date)

	metric := model.DailyMetric{
		DistrictID:   ip.DistrictID,
		Date:         date,
		WaterQuality: ip.WaterQuality,
		Pressure:     ip.Pressure,
		WaterVolume:  ip.WaterVolume,
		Efficiency:   ip.Efficiency,
	}

	// Trends compare against the most recent earlier record; the first
	// record of a district gets zero trends.
	prev, err := uc.repo.LatestBefore(ctx, repository.LatestBeforeOptions{
		DistrictID: ip.DistrictID,
		Date:       date,
	})
	switch err {
	case nil:
		metric.WaterQualityTrend = metric.WaterQuality - prev.WaterQuality
		metric.PressureTrend = metric.Pressure - prev.Pressure
		metric.WaterVolumeTrend = metric.WaterVolume - prev.WaterVolume
		metric.EfficiencyTrend = metric.Efficiency - prev.Efficiency
	case repository.ErrNotFound:
		// zero trends
	default:
		uc.l.Errorf(ctx, "internal.metrics.usecase.UpsertDaily.LatestBefore: %v", err)
		return metrics.MetricOutput{}, err
	}

	upserted, err := uc.repo.Upsert(ctx, repository.UpsertOptions{Metric: metric})
	if err != nil {
		if err == repository.ErrDistrictViolation {
			return metrics.MetricOutput{}, metrics.ErrDistrictNotFound
		}
		uc.l.Errorf(ctx, "internal.metrics.usecase.UpsertDaily.Upsert: %v", err)
		return metrics.MetricOutput{}, err
	}

	uc.raiseAlerts(ctx, sc, upserted)
	uc.recordIngestion(ctx, sc, upserted)

	return metrics.MetricOutput{Metric: upserted}, nil
}

func (uc *usecase) GetDaily(ctx context.Context, sc model.Scope, ip metrics.GetDailyInput) (metrics.MetricOutput, error) {
	if ip.Date.IsZero() {
		return metrics.MetricOutput{}, metrics.ErrMissingDate
	}

	m, err := uc.repo.GetOne(ctx, repository.GetOneOptions{
		DistrictID: ip.DistrictID,
		Date:       truncateToDay(ip.Date),
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return metrics.MetricOutput{}, metrics.ErrMetricNotFound
		}
		uc.l.Errorf(ctx, "internal.metrics.usecase.GetDaily: %v", err)
		return metrics.MetricOutput{}, err
	}

	return metrics.MetricOutput{Metric: m}, nil
}

// raiseAlerts classifies each ingested value and records an alert for
// warning and critical bands. Alerting is best-effort; classification or
// alert failures never fail the ingest.
func (uc *usecase) raiseAlerts(ctx context.Context, sc model.Scope, m model.DailyMetric) {
	if uc.thresholdUC == nil || uc.alertUC == nil {
		return
	}

	values := []struct {
		name  string
		value float64
	}{
		{model.MetricWaterQuality, m.WaterQuality},
		{model.MetricPressure, m.Pressure},
		{model.MetricWaterVolume, m.WaterVolume},
		{model.MetricEfficiency, m.Efficiency},
	}

	for _, v := range values {
		severity, err := uc.thresholdUC.Classify(ctx, v.name, v.value)
		if err != nil {
			uc.l.Warnf(ctx, "internal.metrics.usecase.raiseAlerts.Classify: %v", err)
			continue
		}
		if severity != model.SeverityWarning && severity != model.SeverityCritical {
			continue
		}

		_, err = uc.alertUC.CreateAlert(ctx, sc, alertlog.CreateAlertInput{
			DistrictID: m.DistrictID,
			MetricName: v.name,
			Severity:   severity,
			Description: fmt.Sprintf("%s reading %.2f on %s classified %s",
				v.name, v.value, m.Date.Format("2006-01-02"), severity),
		})
		if err != nil {
			uc.l.Warnf(ctx, "internal.metrics.usecase.raiseAlerts.CreateAlert: %v", err)
		}
	}
}

func (uc *usecase) recordIngestion(ctx context.Context, sc model.Scope, m model.DailyMetric) {
	if uc.actUC == nil {
		return
	}

	if err := uc.actUC.Record(ctx, activity.RecordInput{
		Actor:      sc.Username,
		Action:     "metrics.ingested",
		TargetType: "daily_metric",
		TargetID:   m.ID,
		Detail:     fmt.Sprintf("district %s, %s", m.DistrictID, m.Date.Format("2006-01-02")),
	}); err != nil {
		uc.l.Warnf(ctx, "internal.metrics.usecase.recordIngestion: %v", err)
	}
}
