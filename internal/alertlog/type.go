package alertlog

import (
	"io"

	"aquamon-api/internal/model"
	"aquamon-api/pkg/paginator"
)

type CreateAlertInput struct {
	DistrictID  string
	MetricName  string
	Severity    model.Severity
	Description string
}

type CreateReportInput struct {
	DistrictID  string
	Description string
	Attachment  *AttachmentUpload
}

// AttachmentUpload carries an uploaded report attachment.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type SetResolutionInput struct {
	Kind       model.LogKind
	ID         string
	IsResolved bool
}

type GetInput struct {
	Kind          model.LogKind
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type Filter struct {
	DistrictID string
	IsResolved *bool
	Severity   string
}

type EntryOutput struct {
	Entry model.LogEntry
}

type GetOutput struct {
	Entries   []model.LogEntry
	Paginator paginator.Paginator
}
