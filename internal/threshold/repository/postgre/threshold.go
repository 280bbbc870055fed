package postgres

import (
	"context"
	"database/sql"

	"aquamon-api/internal/model"
	"aquamon-api/internal/threshold/repository"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

const settingColumns = `id, metric_name, critical_min, critical_max, warning_min, warning_max,
	good_min, good_max, is_enabled, created_at, updated_at`

func scanSetting(s interface{ Scan(...any) error }) (settingRow, error) {
	var row settingRow
	err := s.Scan(
		&row.ID, &row.MetricName,
		&row.CriticalMin, &row.CriticalMax,
		&row.WarningMin, &row.WarningMax,
		&row.GoodMin, &row.GoodMax,
		&row.IsEnabled, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.ThresholdSetting, error) {
	row := fromModel(opts.Setting)
	if row.ID == "" {
		row.ID = postgresPkg.NewUUID()
	}

	query := `
		INSERT INTO threshold_settings (
			id, metric_name, critical_min, critical_max, warning_min, warning_max,
			good_min, good_max, is_enabled, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + settingColumns

	created, err := scanSetting(r.db.QueryRowContext(ctx, query,
		row.ID, row.MetricName,
		row.CriticalMin, row.CriticalMax,
		row.WarningMin, row.WarningMax,
		row.GoodMin, row.GoodMax,
		row.IsEnabled,
	))
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.ThresholdSetting{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Create.QueryRow: %v", err)
		return model.ThresholdSetting{}, errors.Wrap(err, "inserting threshold setting")
	}

	return created.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.ThresholdSetting, error) {
	if err := postgresPkg.IsUUID(opts.Setting.ID); err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Update.IsUUID: %v", err)
		return model.ThresholdSetting{}, err
	}

	row := fromModel(opts.Setting)
	query := `
		UPDATE threshold_settings
		SET critical_min = $2, critical_max = $3,
			warning_min = $4, warning_max = $5,
			good_min = $6, good_max = $7,
			is_enabled = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + settingColumns

	updated, err := scanSetting(r.db.QueryRowContext(ctx, query,
		row.ID,
		row.CriticalMin, row.CriticalMax,
		row.WarningMin, row.WarningMax,
		row.GoodMin, row.GoodMax,
		row.IsEnabled,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ThresholdSetting{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Update.QueryRow: %v", err)
		return model.ThresholdSetting{}, errors.Wrap(err, "updating threshold setting")
	}

	return updated.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM threshold_settings WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Delete.Exec: %v", err)
		return errors.Wrap(err, "deleting threshold setting")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Delete.RowsAffected: %v", err)
		return errors.Wrap(err, "deleting threshold setting")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.ThresholdSetting, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Detail.IsUUID: %v", err)
		return model.ThresholdSetting{}, err
	}

	query := `SELECT ` + settingColumns + ` FROM threshold_settings WHERE id = $1`
	row, err := scanSetting(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ThresholdSetting{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.Detail.QueryRow: %v", err)
		return model.ThresholdSetting{}, errors.Wrap(err, "selecting threshold setting")
	}

	return row.toModel(), nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.ThresholdSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM threshold_settings WHERE metric_name = $1`
	row, err := scanSetting(r.db.QueryRowContext(ctx, query, opts.MetricName))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ThresholdSetting{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.GetOne.QueryRow: %v", err)
		return model.ThresholdSetting{}, errors.Wrap(err, "selecting threshold setting")
	}

	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.ThresholdSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM threshold_settings ORDER BY metric_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.List.Query: %v", err)
		return nil, errors.Wrap(err, "listing threshold settings")
	}
	defer rows.Close()

	var res []model.ThresholdSetting
	for rows.Next() {
		row, err := scanSetting(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.threshold.repository.postgre.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning threshold setting")
		}
		res = append(res, row.toModel())
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.threshold.repository.postgre.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterating threshold settings")
	}

	return res, nil
}
