package repository

import (
	"time"

	"aquamon-api/internal/model"
)

// UpsertOptions contains options for writing a district-day record.
type UpsertOptions struct {
	Metric model.DailyMetric
}

// GetOneOptions contains options for reading one district-day record.
type GetOneOptions struct {
	DistrictID string
	Date       time.Time
}

// LatestBeforeOptions contains options for reading the most recent
// record strictly before Date.
type LatestBeforeOptions struct {
	DistrictID string
	Date       time.Time
}

// RangeOptions contains options for a time-series range query.
type RangeOptions struct {
	DistrictIDs []string
	From        time.Time
	To          time.Time
}
