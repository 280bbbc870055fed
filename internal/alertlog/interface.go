package alertlog

import (
	"context"

	"aquamon-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateAlert records a threshold alert. It is called by the metrics
	// pipeline when a classified value lands in a warning or critical band.
	CreateAlert(ctx context.Context, sc model.Scope, ip CreateAlertInput) (EntryOutput, error)

	// CreateReport files an operator problem report, optionally storing
	// an attachment.
	CreateReport(ctx context.Context, sc model.Scope, ip CreateReportInput) (EntryOutput, error)

	// SetResolution resolves or reopens an entry. Resolving an already
	// resolved entry re-stamps the resolver; reopening clears the
	// resolution fields.
	SetResolution(ctx context.Context, sc model.Scope, ip SetResolutionInput) (EntryOutput, error)

	Detail(ctx context.Context, sc model.Scope, kind model.LogKind, id string) (EntryOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)

	// AttachmentURL returns a time-limited download URL for a report
	// attachment.
	AttachmentURL(ctx context.Context, sc model.Scope, id string) (string, error)
}

// Publisher emits lifecycle events to the event stream. A nil publisher
// disables publishing.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
