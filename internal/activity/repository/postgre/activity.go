package postgres

import (
	"context"
	"strconv"

	"aquamon-api/internal/activity/repository"
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

const activityColumns = `id, actor, action, target_type, target_id, detail, created_at`

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Activity, error) {
	act := opts.Activity
	if act.ID == "" {
		act.ID = postgresPkg.NewUUID()
	}

	query := `
		INSERT INTO activity_logs (id, actor, action, target_type, target_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + activityColumns

	var created model.Activity
	err := r.db.QueryRowContext(ctx, query,
		act.ID, act.Actor, act.Action, act.TargetType, act.TargetID, act.Detail,
	).Scan(
		&created.ID, &created.Actor, &created.Action,
		&created.TargetType, &created.TargetID, &created.Detail, &created.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.activity.repository.postgre.Create.QueryRow: %v", err)
		return model.Activity{}, errors.Wrap(err, "inserting activity entry")
	}

	return created, nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Activity, paginator.Paginator, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if opts.Filter.Actor != "" {
		args = append(args, opts.Filter.Actor)
		where += ` AND actor = $` + strconv.Itoa(len(args))
	}
	if opts.Filter.TargetType != "" {
		args = append(args, opts.Filter.TargetType)
		where += ` AND target_type = $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_logs`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.activity.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "counting activity entries")
	}

	opts.PaginateQuery.Adjust()
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	query := `SELECT ` + activityColumns + ` FROM activity_logs` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.activity.repository.postgre.Get.Query: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "listing activity entries")
	}
	defer rows.Close()

	var res []model.Activity
	for rows.Next() {
		var act model.Activity
		if err := rows.Scan(
			&act.ID, &act.Actor, &act.Action,
			&act.TargetType, &act.TargetID, &act.Detail, &act.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "internal.activity.repository.postgre.Get.Scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "scanning activity entry")
		}
		res = append(res, act)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.activity.repository.postgre.Get.Rows: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "iterating activity entries")
	}

	pag := paginator.NewPaginator(total, int64(len(res)), opts.PaginateQuery)

	return res, pag, nil
}
