package http

import (
	"time"

	"aquamon-api/internal/activity"
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

type getReq struct {
	Actor      string `form:"actor"`
	TargetType string `form:"target_type"`
	paginator.PaginateQuery
}

type activityResp struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type getResp struct {
	Items     []activityResp              `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newActivityResp(a model.Activity) activityResp {
	return activityResp{
		ID:         a.ID,
		Actor:      a.Actor,
		Action:     a.Action,
		TargetType: a.TargetType,
		TargetID:   a.TargetID,
		Detail:     a.Detail,
		CreatedAt:  a.CreatedAt,
	}
}

func newGetResp(o activity.GetOutput) getResp {
	items := make([]activityResp, len(o.Activities))
	for i, a := range o.Activities {
		items[i] = newActivityResp(a)
	}
	return getResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
