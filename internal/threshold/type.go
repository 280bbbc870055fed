package threshold

import "aquamon-api/internal/model"

type CreateInput struct {
	MetricName  string
	CriticalMin *float64
	CriticalMax *float64
	WarningMin  *float64
	WarningMax  *float64
	GoodMin     *float64
	GoodMax     *float64
	IsEnabled   bool
}

type UpdateInput struct {
	ID          string
	CriticalMin *float64
	CriticalMax *float64
	WarningMin  *float64
	WarningMax  *float64
	GoodMin     *float64
	GoodMax     *float64
	IsEnabled   *bool
}

type SettingOutput struct {
	Setting model.ThresholdSetting
}
