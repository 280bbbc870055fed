package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"aquamon-api/internal/alertlog/repository"
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

const entryColumns = `id, district_id, metric_name, severity, description, attachment,
	is_resolved, resolved_by, resolved_at, created_at, updated_at`

func scanEntry(s interface{ Scan(...any) error }) (entryRow, error) {
	var row entryRow
	err := s.Scan(
		&row.ID, &row.DistrictID, &row.MetricName, &row.Severity,
		&row.Description, &row.Attachment,
		&row.IsResolved, &row.ResolvedBy, &row.ResolvedAt,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.LogEntry, error) {
	table, err := tableFor(opts.Entry.Kind)
	if err != nil {
		return model.LogEntry{}, err
	}

	row := fromModel(opts.Entry)
	if row.ID == "" {
		row.ID = postgresPkg.NewUUID()
	}

	query := `
		INSERT INTO ` + table + ` (
			id, district_id, metric_name, severity, description, attachment,
			is_resolved, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING ` + entryColumns

	created, err := scanEntry(r.db.QueryRowContext(ctx, query,
		row.ID, row.DistrictID, row.MetricName, row.Severity,
		row.Description, row.Attachment,
	))
	if err != nil {
		if postgresPkg.IsForeignKeyViolation(err) {
			return model.LogEntry{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Create.QueryRow: %v", err)
		return model.LogEntry{}, errors.Wrap(err, "inserting log entry")
	}

	return created.toModel(opts.Entry.Kind), nil
}

func (r *implRepository) Detail(ctx context.Context, kind model.LogKind, id string) (model.LogEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return model.LogEntry{}, err
	}

	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Detail.IsUUID: %v", err)
		return model.LogEntry{}, err
	}

	query := `SELECT ` + entryColumns + ` FROM ` + table + ` WHERE id = $1`
	row, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.LogEntry{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Detail.QueryRow: %v", err)
		return model.LogEntry{}, errors.Wrap(err, "selecting log entry")
	}

	return row.toModel(kind), nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.LogEntry, paginator.Paginator, error) {
	table, err := tableFor(opts.Kind)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	where := ` WHERE 1=1`
	args := []any{}

	if opts.Filter.DistrictID != "" {
		if err := postgresPkg.IsUUID(opts.Filter.DistrictID); err != nil {
			r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Get.IsUUID: %v", err)
			return nil, paginator.Paginator{}, err
		}
		args = append(args, opts.Filter.DistrictID)
		where += ` AND district_id = $` + strconv.Itoa(len(args))
	}
	if opts.Filter.IsResolved != nil {
		args = append(args, *opts.Filter.IsResolved)
		where += ` AND is_resolved = $` + strconv.Itoa(len(args))
	}
	if opts.Filter.Severity != "" {
		args = append(args, opts.Filter.Severity)
		where += ` AND severity = $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "counting log entries")
	}

	opts.PaginateQuery.Adjust()
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	query := `SELECT ` + entryColumns + ` FROM ` + table + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Get.Query: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "listing log entries")
	}
	defer rows.Close()

	var res []model.LogEntry
	for rows.Next() {
		row, err := scanEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Get.Scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "scanning log entry")
		}
		res = append(res, row.toModel(opts.Kind))
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.Get.Rows: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "iterating log entries")
	}

	pag := paginator.NewPaginator(total, int64(len(res)), opts.PaginateQuery)

	return res, pag, nil
}

func (r *implRepository) SetResolution(ctx context.Context, opts repository.ResolutionOptions) (model.LogEntry, error) {
	table, err := tableFor(opts.Kind)
	if err != nil {
		return model.LogEntry{}, err
	}

	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.SetResolution.IsUUID: %v", err)
		return model.LogEntry{}, err
	}

	// One statement for both directions keeps the transition atomic.
	// Resolving re-stamps the resolver even when already resolved.
	query := `
		UPDATE ` + table + `
		SET is_resolved = $2,
			resolved_by = CASE WHEN $2 THEN $3 ELSE NULL END,
			resolved_at = CASE WHEN $2 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + entryColumns

	row, err := scanEntry(r.db.QueryRowContext(ctx, query, opts.ID, opts.Resolve, opts.ResolvedBy))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.LogEntry{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alertlog.repository.postgre.SetResolution.QueryRow: %v", err)
		return model.LogEntry{}, errors.Wrap(err, "updating log entry resolution")
	}

	return row.toModel(opts.Kind), nil
}
