package repository

import "aquamon-api/internal/model"

// CreateOptions contains options for creating a district.
type CreateOptions struct {
	District model.District
}

// UpdateOptions contains options for updating a district.
type UpdateOptions struct {
	District model.District
}
