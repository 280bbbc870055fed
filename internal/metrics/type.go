package metrics

import (
	"time"

	"aquamon-api/internal/model"
)

type UpsertInput struct {
	DistrictID   string
	Date         time.Time
	WaterQuality float64
	Pressure     float64
	WaterVolume  float64
	Efficiency   float64
}

type GetDailyInput struct {
	DistrictID string
	Date       time.Time
}

type SeriesInput struct {
	DistrictIDs []string
	From        time.Time
	To          time.Time
}

type MetricOutput struct {
	Metric model.DailyMetric
}
