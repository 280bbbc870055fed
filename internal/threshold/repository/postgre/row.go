package postgres

import (
	"time"

	"aquamon-api/internal/model"

	"github.com/aarondl/null/v8"
)

type settingRow struct {
	ID          string
	MetricName  string
	CriticalMin null.Float64
	CriticalMax null.Float64
	WarningMin  null.Float64
	WarningMax  null.Float64
	GoodMin     null.Float64
	GoodMax     null.Float64
	IsEnabled   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r settingRow) toModel() model.ThresholdSetting {
	return model.ThresholdSetting{
		ID:          r.ID,
		MetricName:  r.MetricName,
		CriticalMin: r.CriticalMin.Ptr(),
		CriticalMax: r.CriticalMax.Ptr(),
		WarningMin:  r.WarningMin.Ptr(),
		WarningMax:  r.WarningMax.Ptr(),
		GoodMin:     r.GoodMin.Ptr(),
		GoodMax:     r.GoodMax.Ptr(),
		IsEnabled:   r.IsEnabled,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromModel(s model.ThresholdSetting) settingRow {
	return settingRow{
		ID:          s.ID,
		MetricName:  s.MetricName,
		CriticalMin: null.Float64FromPtr(s.CriticalMin),
		CriticalMax: null.Float64FromPtr(s.CriticalMax),
		WarningMin:  null.Float64FromPtr(s.WarningMin),
		WarningMax:  null.Float64FromPtr(s.WarningMax),
		GoodMin:     null.Float64FromPtr(s.GoodMin),
		GoodMax:     null.Float64FromPtr(s.GoodMax),
		IsEnabled:   s.IsEnabled,
	}
}
