package activity

import (
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

type RecordInput struct {
	Actor      string
	Action     string
	TargetType string
	TargetID   string
	Detail     string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type Filter struct {
	Actor      string
	TargetType string
}

type GetOutput struct {
	Activities []model.Activity
	Paginator  paginator.Paginator
}
