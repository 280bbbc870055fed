package repository

import "aquamon-api/internal/model"

// CreateOptions contains options for creating a threshold setting.
type CreateOptions struct {
	Setting model.ThresholdSetting
}

// UpdateOptions contains options for updating a threshold setting.
type UpdateOptions struct {
	Setting model.ThresholdSetting
}

// GetOneOptions contains options for getting a single setting.
type GetOneOptions struct {
	MetricName string
}
