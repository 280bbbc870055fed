package http

import (
	"time"

	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

type listReq struct {
	DistrictID string `form:"district_id"`
	IsResolved *bool  `form:"is_resolved"`
	Severity   string `form:"severity"`
	paginator.PaginateQuery
}

func (r listReq) toInput(kind model.LogKind) alertlog.GetInput {
	return alertlog.GetInput{
		Kind: kind,
		Filter: alertlog.Filter{
			DistrictID: r.DistrictID,
			IsResolved: r.IsResolved,
			Severity:   r.Severity,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type resolveReq struct {
	IsResolved *bool `json:"is_resolved" binding:"required"`
}

type createReportReq struct {
	DistrictID  string `form:"district_id" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type entryResp struct {
	ID            string     `json:"id"`
	DistrictID    string     `json:"district_id"`
	MetricName    string     `json:"metric_name,omitempty"`
	Severity      string     `json:"severity,omitempty"`
	Description   string     `json:"description"`
	HasAttachment bool       `json:"has_attachment"`
	IsResolved    bool       `json:"is_resolved"`
	ResolvedBy    *string    `json:"resolved_by"`
	ResolvedAt    *time.Time `json:"resolved_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type listResp struct {
	Items     []entryResp                 `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type attachmentResp struct {
	URL string `json:"url"`
}

func newEntryResp(e model.LogEntry) entryResp {
	return entryResp{
		ID:            e.ID,
		DistrictID:    e.DistrictID,
		MetricName:    e.MetricName,
		Severity:      string(e.Severity),
		Description:   e.Description,
		HasAttachment: e.Attachment != "",
		IsResolved:    e.IsResolved,
		ResolvedBy:    e.ResolvedBy,
		ResolvedAt:    e.ResolvedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func newListResp(o alertlog.GetOutput) listResp {
	items := make([]entryResp, len(o.Entries))
	for i, e := range o.Entries {
		items[i] = newEntryResp(e)
	}
	return listResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
