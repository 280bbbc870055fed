package repository

import "aquamon-api/internal/model"

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
type GetOneOptions struct {
	ID       string
	Username string
}
