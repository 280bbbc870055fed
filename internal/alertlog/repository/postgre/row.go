package postgres

import (
	"time"

	"aquamon-api/internal/alertlog/repository"
	"aquamon-api/internal/model"

	"github.com/aarondl/null/v8"
)

// Both entry kinds share one schema; alerts never carry attachments and
// reports never carry metric bands.
func tableFor(kind model.LogKind) (string, error) {
	switch kind {
	case model.KindAlert:
		return "alert_logs", nil
	case model.KindProblemReport:
		return "problem_reports", nil
	default:
		return "", repository.ErrInvalidKind
	}
}

type entryRow struct {
	ID          string
	DistrictID  string
	MetricName  null.String
	Severity    null.String
	Description string
	Attachment  null.String
	IsResolved  bool
	ResolvedBy  null.String
	ResolvedAt  null.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r entryRow) toModel(kind model.LogKind) model.LogEntry {
	var resolvedAt *time.Time
	if r.ResolvedAt.Valid {
		t := r.ResolvedAt.Time
		resolvedAt = &t
	}
	return model.LogEntry{
		ID:          r.ID,
		Kind:        kind,
		DistrictID:  r.DistrictID,
		MetricName:  r.MetricName.String,
		Severity:    model.Severity(r.Severity.String),
		Description: r.Description,
		Attachment:  r.Attachment.String,
		IsResolved:  r.IsResolved,
		ResolvedBy:  r.ResolvedBy.Ptr(),
		ResolvedAt:  resolvedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromModel(e model.LogEntry) entryRow {
	return entryRow{
		ID:          e.ID,
		DistrictID:  e.DistrictID,
		MetricName:  null.NewString(e.MetricName, e.MetricName != ""),
		Severity:    null.NewString(string(e.Severity), e.Severity != ""),
		Description: e.Description,
		Attachment:  null.NewString(e.Attachment, e.Attachment != ""),
		IsResolved:  e.IsResolved,
	}
}
