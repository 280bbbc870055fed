package postgres

import (
	"context"
	"database/sql"

	"aquamon-api/internal/model"
	"aquamon-api/internal/user/repository"
	postgresPkg "aquamon-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

const userColumns = `id, username, full_name, password, role, created_at, updated_at`

func scanUser(s interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := s.Scan(&u.ID, &u.Username, &u.FullName, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if u.ID == "" {
		u.ID = postgresPkg.NewUUID()
	}

	query := `
		INSERT INTO users (id, username, full_name, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		u.ID, u.Username, u.FullName, u.Password, u.Role,
	))
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.Create.QueryRow: %v", err)
		return model.User{}, errors.Wrap(err, "inserting user")
	}

	return created, nil
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	var (
		query = `SELECT ` + userColumns + ` FROM users WHERE `
		arg   any
	)
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		query += `id = $1`
		arg = opts.ID
	default:
		query += `username = $1`
		arg = opts.Username
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.QueryRow: %v", err)
		return model.User{}, errors.Wrap(err, "selecting user")
	}

	return u, nil
}
