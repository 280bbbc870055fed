package http

import (
	"strings"
	"time"

	"aquamon-api/internal/metrics"
	"aquamon-api/internal/model"
	"aquamon-api/pkg/response"
)

type upsertReq struct {
	DistrictID   string  `json:"district_id" binding:"required"`
	Date         string  `json:"date"`
	WaterQuality float64 `json:"water_quality"`
	Pressure     float64 `json:"pressure"`
	WaterVolume  float64 `json:"water_volume"`
	Efficiency   float64 `json:"efficiency"`
}

func (r upsertReq) toInput() (metrics.UpsertInput, error) {
	// An omitted date means the reading is for today.
	date := time.Now()
	if r.Date != "" {
		parsed, err := time.Parse(response.DateFormat, r.Date)
		if err != nil {
			return metrics.UpsertInput{}, err
		}
		date = parsed
	}
	return metrics.UpsertInput{
		DistrictID:   r.DistrictID,
		Date:         date,
		WaterQuality: r.WaterQuality,
		Pressure:     r.Pressure,
		WaterVolume:  r.WaterVolume,
		Efficiency:   r.Efficiency,
	}, nil
}

type getDailyReq struct {
	DistrictID string `form:"district_id" binding:"required"`
	Date       string `form:"date" binding:"required"`
}

type seriesReq struct {
	DistrictIDs string `form:"district_ids"`
	From        string `form:"from" binding:"required"`
	To          string `form:"to" binding:"required"`
}

func (r seriesReq) toInput() (metrics.SeriesInput, error) {
	from, err := time.Parse(response.DateFormat, r.From)
	if err != nil {
		return metrics.SeriesInput{}, err
	}
	to, err := time.Parse(response.DateFormat, r.To)
	if err != nil {
		return metrics.SeriesInput{}, err
	}

	var ids []string
	if r.DistrictIDs != "" {
		for _, id := range strings.Split(r.DistrictIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	return metrics.SeriesInput{
		DistrictIDs: ids,
		From:        from,
		To:          to,
	}, nil
}

type metricResp struct {
	ID                string    `json:"id"`
	DistrictID        string    `json:"district_id"`
	Date              string    `json:"date"`
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

type seriesResp struct {
	DistrictID string       `json:"district_id"`
	Metrics    []metricResp `json:"metrics"`
}

func newMetricResp(m model.DailyMetric) metricResp {
	return metricResp{
		ID:                m.ID,
		DistrictID:        m.DistrictID,
		Date:              m.Date.Format(response.DateFormat),
		WaterQuality:      m.WaterQuality,
		WaterQualityTrend: m.WaterQualityTrend,
		Pressure:          m.Pressure,
		PressureTrend:     m.PressureTrend,
		WaterVolume:       m.WaterVolume,
		WaterVolumeTrend:  m.WaterVolumeTrend,
		Efficiency:        m.Efficiency,
		EfficiencyTrend:   m.EfficiencyTrend,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func newSeriesResp(series []model.DistrictSeries) []seriesResp {
	res := make([]seriesResp, len(series))
	for i, s := range series {
		items := make([]metricResp, len(s.Metrics))
		for j, m := range s.Metrics {
			items[j] = newMetricResp(m)
		}
		res[i] = seriesResp{
			DistrictID: s.DistrictID,
			Metrics:    items,
		}
	}
	return res
}
