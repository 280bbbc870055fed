package postgres

import (
	"context"
	"database/sql"

	"aquamon-api/internal/district/repository"
	"aquamon-api/internal/model"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

const districtColumns = `id, name, province, region, status, created_at, updated_at`

func scanDistrict(s interface{ Scan(...any) error }) (model.District, error) {
	var d model.District
	err := s.Scan(&d.ID, &d.Name, &d.Province, &d.Region, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.District, error) {
	d := opts.District
	if d.ID == "" {
		d.ID = postgresPkg.NewUUID()
	}

	query := `
		INSERT INTO districts (id, name, province, region, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + districtColumns

	created, err := scanDistrict(r.db.QueryRowContext(ctx, query,
		d.ID, d.Name, d.Province, d.Region, d.Status,
	))
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.District{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.district.repository.postgre.Create.QueryRow: %v", err)
		return model.District{}, errors.Wrap(err, "inserting district")
	}

	return created, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.District, error) {
	if err := postgresPkg.IsUUID(opts.District.ID); err != nil {
		r.l.Errorf(ctx, "internal.district.repository.postgre.Update.IsUUID: %v", err)
		return model.District{}, err
	}

	query := `
		UPDATE districts
		SET name = $2, province = $3, region = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + districtColumns

	d := opts.District
	updated, err := scanDistrict(r.db.QueryRowContext(ctx, query,
		d.ID, d.Name, d.Province, d.Region, d.Status,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.District{}, repository.ErrNotFound
		}
		if postgresPkg.IsUniqueViolation(err) {
			return model.District{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.district.repository.postgre.Update.QueryRow: %v", err)
		return model.District{}, errors.Wrap(err, "updating district")
	}

	return updated, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.District, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.district.repository.postgre.Detail.IsUUID: %v", err)
		return model.District{}, err
	}

	query := `SELECT ` + districtColumns + ` FROM districts WHERE id = $1`
	d, err := scanDistrict(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.District{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.district.repository.postgre.Detail.QueryRow: %v", err)
		return model.District{}, errors.Wrap(err, "selecting district")
	}

	return d, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "internal.district.repository.postgre.List.Query: %v", err)
		return nil, errors.Wrap(err, "listing districts")
	}
	defer rows.Close()

	var res []model.District
	for rows.Next() {
		d, err := scanDistrict(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.district.repository.postgre.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning district")
		}
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.district.repository.postgre.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterating districts")
	}

	return res, nil
}
