package model

import "time"

// Metric names used by threshold settings and alert descriptions.
const (
	MetricWaterQuality = "water_quality"
	MetricPressure     = "pressure"
	MetricWaterVolume  = "water_volume"
	MetricEfficiency   = "efficiency"
)

// DailyMetric is one district's measurements for one calendar day.
// A district has at most one record per date; re-ingesting the same
// (district, date) pair overwrites the values in place.
//
// Each trend field is the signed delta against the district's most
// recent earlier record, or 0 when no earlier record exists.
type DailyMetric struct {
	ID                string    `json:"id"`
	DistrictID        string    `json:"district_id"`
	Date              time.Time `json:"date"`
	WaterQuality      float64   `json:"water_quality"`
	WaterQualityTrend float64   `json:"water_quality_trend"`
	Pressure          float64   `json:"pressure"`
	PressureTrend     float64   `json:"pressure_trend"`
	WaterVolume       float64   `json:"water_volume"`
	WaterVolumeTrend  float64   `json:"water_volume_trend"`
	Efficiency        float64   `json:"efficiency"`
	EfficiencyTrend   float64   `json:"efficiency_trend"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DistrictSeries is the per-district slice of a time-series query,
// ordered chronologically.
type DistrictSeries struct {
	DistrictID string        `json:"district_id"`
	Metrics    []DailyMetric `json:"metrics"`
}
