package usecase

import (
	"context"
	"time"

	"aquamon-api/internal/metrics"
	"aquamon-api/internal/metrics/repository"
	"aquamon-api/internal/model"
)

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (uc *usecase) Series(ctx context.Context, sc model.Scope, ip metrics.SeriesInput) ([]model.DistrictSeries, error) {
	if ip.From.IsZero() || ip.To.IsZero() {
		return nil, metrics.ErrMissingDate
	}

	from := truncateToDay(ip.From)
	to := truncateToDay(ip.To)
	if from.After(to) {
		return nil, metrics.ErrInvalidRange
	}

	flat, err := uc.repo.QueryRange(ctx, repository.RangeOptions{
		DistrictIDs: ip.DistrictIDs,
		From:        from,
		To:          to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.metrics.usecase.Series.QueryRange: %v", err)
		return nil, err
	}

	return groupByDistrict(flat), nil
}

// groupByDistrict splits a flat chronological result into per-district
// series. Districts appear in order of their first record; each series
// stays chronological because the input already is.
func groupByDistrict(flat []model.DailyMetric) []model.DistrictSeries {
	res := []model.DistrictSeries{}
	index := map[string]int{}

	for _, m := range flat {
		i, ok := index[m.DistrictID]
		if !ok {
			i = len(res)
			index[m.DistrictID] = i
			res = append(res, model.DistrictSeries{DistrictID: m.DistrictID})
		}
		res[i].Metrics = append(res[i].Metrics, m)
	}

	return res
}
