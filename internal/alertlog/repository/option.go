package repository

import (
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

// CreateOptions contains options for creating a log entry.
type CreateOptions struct {
	Entry model.LogEntry
}

// ResolutionOptions contains options for resolving or reopening an entry.
type ResolutionOptions struct {
	Kind       model.LogKind
	ID         string
	Resolve    bool
	ResolvedBy string
}

// Filter contains filtering options for entry queries.
type Filter struct {
	DistrictID string
	IsResolved *bool
	Severity   string
}

// GetOptions contains options for paginated entry listing.
type GetOptions struct {
	Kind          model.LogKind
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
