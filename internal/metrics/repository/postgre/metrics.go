package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"aquamon-api/internal/metrics/repository"
	"aquamon-api/internal/model"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const metricColumns = `id, district_id, date, water_quality, water_quality_trend,
	pressure, pressure_trend, water_volume, water_volume_trend,
	efficiency, efficiency_trend, created_at, updated_at`

func scanMetric(s interface{ Scan(...any) error }) (model.DailyMetric, error) {
	var m model.DailyMetric
	err := s.Scan(
		&m.ID, &m.DistrictID, &m.Date,
		&m.WaterQuality, &m.WaterQualityTrend,
		&m.Pressure, &m.PressureTrend,
		&m.WaterVolume, &m.WaterVolumeTrend,
		&m.Efficiency, &m.EfficiencyTrend,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertOptions) (model.DailyMetric, error) {
	m := opts.Metric
	if m.ID == "" {
		m.ID = postgresPkg.NewUUID()
	}

	// Single statement keeps the day-keyed write atomic under
	// concurrent ingestion of the same (district, date) pair.
	query := `
		INSERT INTO daily_metrics (
			id, district_id, date,
			water_quality, water_quality_trend,
			pressure, pressure_trend,
			water_volume, water_volume_trend,
			efficiency, efficiency_trend,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (district_id, date) DO UPDATE SET
			water_quality = EXCLUDED.water_quality,
			water_quality_trend = EXCLUDED.water_quality_trend,
			pressure = EXCLUDED.pressure,
			pressure_trend = EXCLUDED.pressure_trend,
			water_volume = EXCLUDED.water_volume,
			water_volume_trend = EXCLUDED.water_volume_trend,
			efficiency = EXCLUDED.efficiency,
			efficiency_trend = EXCLUDED.efficiency_trend,
			updated_at = NOW()
		RETURNING ` + metricColumns

	upserted, err := scanMetric(r.db.QueryRowContext(ctx, query,
		m.ID, m.DistrictID, m.Date,
		m.WaterQuality, m.WaterQualityTrend,
		m.Pressure, m.PressureTrend,
		m.WaterVolume, m.WaterVolumeTrend,
		m.Efficiency, m.EfficiencyTrend,
	))
	if err != nil {
		if postgresPkg.IsForeignKeyViolation(err) {
			return model.DailyMetric{}, repository.ErrDistrictViolation
		}
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.Upsert.QueryRow: %v", err)
		return model.DailyMetric{}, errors.Wrap(err, "upserting daily metric")
	}

	return upserted, nil
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.DailyMetric, error) {
	if err := postgresPkg.IsUUID(opts.DistrictID); err != nil {
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.GetOne.IsUUID: %v", err)
		return model.DailyMetric{}, err
	}

	query := `SELECT ` + metricColumns + ` FROM daily_metrics WHERE district_id = $1 AND date = $2`
	m, err := scanMetric(r.db.QueryRowContext(ctx, query, opts.DistrictID, opts.Date))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.DailyMetric{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.GetOne.QueryRow: %v", err)
		return model.DailyMetric{}, errors.Wrap(err, "selecting daily metric")
	}

	return m, nil
}

func (r *implRepository) LatestBefore(ctx context.Context, opts repository.LatestBeforeOptions) (model.DailyMetric, error) {
	if err := postgresPkg.IsUUID(opts.DistrictID); err != nil {
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.LatestBefore.IsUUID: %v", err)
		return model.DailyMetric{}, err
	}

	query := `
		SELECT ` + metricColumns + `
		FROM daily_metrics
		WHERE district_id = $1 AND date < $2
		ORDER BY date DESC
		LIMIT 1`

	m, err := scanMetric(r.db.QueryRowContext(ctx, query, opts.DistrictID, opts.Date))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.DailyMetric{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.LatestBefore.QueryRow: %v", err)
		return model.DailyMetric{}, errors.Wrap(err, "selecting previous daily metric")
	}

	return m, nil
}

func (r *implRepository) QueryRange(ctx context.Context, opts repository.RangeOptions) ([]model.DailyMetric, error) {
	where := ` WHERE date >= $1 AND date <= $2`
	args := []any{opts.From, opts.To}

	if len(opts.DistrictIDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(opts.DistrictIDs); err != nil {
			r.l.Errorf(ctx, "internal.metrics.repository.postgre.QueryRange.ValidateUUIDs: %v", err)
			return nil, err
		}
		args = append(args, pq.Array(opts.DistrictIDs))
		where += ` AND district_id = ANY($` + strconv.Itoa(len(args)) + `)`
	}

	query := `SELECT ` + metricColumns + ` FROM daily_metrics` + where +
		` ORDER BY date, district_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.QueryRange.Query: %v", err)
		return nil, errors.Wrap(err, "querying metric range")
	}
	defer rows.Close()

	var res []model.DailyMetric
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.metrics.repository.postgre.QueryRange.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning daily metric")
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.metrics.repository.postgre.QueryRange.Rows: %v", err)
		return nil, errors.Wrap(err, "iterating metric range")
	}

	return res, nil
}
