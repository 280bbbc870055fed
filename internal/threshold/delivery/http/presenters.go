package http

import (
	"time"

	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold"
)

type createReq struct {
	MetricName  string   `json:"metric_name" binding:"required"`
	GoodMin     *float64 `json:"min_good"`
	GoodMax     *float64 `json:"max_good"`
	WarningMin  *float64 `json:"min_warning"`
	WarningMax  *float64 `json:"max_warning"`
	CriticalMin *float64 `json:"min_critical"`
	CriticalMax *float64 `json:"max_critical"`
	IsEnabled   *bool    `json:"is_enabled"`
}

func (r createReq) toInput() threshold.CreateInput {
	// An omitted is_enabled means the setting starts enabled.
	enabled := true
	if r.IsEnabled != nil {
		enabled = *r.IsEnabled
	}
	return threshold.CreateInput{
		MetricName:  r.MetricName,
		CriticalMin: r.CriticalMin,
		CriticalMax: r.CriticalMax,
		WarningMin:  r.WarningMin,
		WarningMax:  r.WarningMax,
		GoodMin:     r.GoodMin,
		GoodMax:     r.GoodMax,
		IsEnabled:   enabled,
	}
}

type updateReq struct {
	GoodMin     *float64 `json:"min_good"`
	GoodMax     *float64 `json:"max_good"`
	WarningMin  *float64 `json:"min_warning"`
	WarningMax  *float64 `json:"max_warning"`
	CriticalMin *float64 `json:"min_critical"`
	CriticalMax *float64 `json:"max_critical"`
	IsEnabled   *bool    `json:"is_enabled"`
}

func (r updateReq) toInput(id string) threshold.UpdateInput {
	return threshold.UpdateInput{
		ID:          id,
		CriticalMin: r.CriticalMin,
		CriticalMax: r.CriticalMax,
		WarningMin:  r.WarningMin,
		WarningMax:  r.WarningMax,
		GoodMin:     r.GoodMin,
		GoodMax:     r.GoodMax,
		IsEnabled:   r.IsEnabled,
	}
}

type settingResp struct {
	ID          string    `json:"id"`
	MetricName  string    `json:"metric_name"`
	GoodMin     *float64  `json:"min_good"`
	GoodMax     *float64  `json:"max_good"`
	WarningMin  *float64  `json:"min_warning"`
	WarningMax  *float64  `json:"max_warning"`
	CriticalMin *float64  `json:"min_critical"`
	CriticalMax *float64  `json:"max_critical"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSettingResp(s model.ThresholdSetting) settingResp {
	return settingResp{
		ID:          s.ID,
		MetricName:  s.MetricName,
		GoodMin:     s.GoodMin,
		GoodMax:     s.GoodMax,
		WarningMin:  s.WarningMin,
		WarningMax:  s.WarningMax,
		CriticalMin: s.CriticalMin,
		CriticalMax: s.CriticalMax,
		IsEnabled:   s.IsEnabled,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func newListResp(settings []model.ThresholdSetting) []settingResp {
	res := make([]settingResp, len(settings))
	for i, s := range settings {
		res[i] = newSettingResp(s)
	}
	return res
}
