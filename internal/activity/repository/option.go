package repository

import (
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

// CreateOptions contains options for appending an activity entry.
type CreateOptions struct {
	Activity model.Activity
}

// Filter contains filtering options for activity queries.
type Filter struct {
	Actor      string
	TargetType string
}

// GetOptions contains options for paginated activity listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
