package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aquamon-api/internal/activity"
	"aquamon-api/internal/model"
)

const attachmentURLExpiry = 15 * time.Minute

const (
	eventAlertRaised   = "alert.raised"
	eventAlertResolved = "alert.resolved"
	eventAlertReopened = "alert.reopened"
)

type alertEvent struct {
	Type       string    `json:"type"`
	EntryID    string    `json:"entry_id"`
	DistrictID string    `json:"district_id"`
	MetricName string    `json:"metric_name,omitempty"`
	Severity   string    `json:"severity,omitempty"`
	IsResolved bool      `json:"is_resolved"`
	ResolvedBy *string   `json:"resolved_by,omitempty"`
	At         time.Time `json:"at"`
}

// publishEvent emits a lifecycle event. Publishing is best-effort; a
// broker outage must not fail the write that triggered it.
func (uc *usecase) publishEvent(ctx context.Context, eventType string, entry model.LogEntry) {
	if uc.pub == nil {
		return
	}

	payload, err := json.Marshal(alertEvent{
		Type:       eventType,
		EntryID:    entry.ID,
		DistrictID: entry.DistrictID,
		MetricName: entry.MetricName,
		Severity:   string(entry.Severity),
		IsResolved: entry.IsResolved,
		ResolvedBy: entry.ResolvedBy,
		At:         time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertlog.usecase.publishEvent.Marshal: %v", err)
		return
	}

	if err := uc.pub.Publish(ctx, entry.ID, payload); err != nil {
		uc.l.Errorf(ctx, "internal.alertlog.usecase.publishEvent.Publish: %v", err)
	}
}

// recordActivity appends an audit entry. Failures are logged and dropped.
func (uc *usecase) recordActivity(ctx context.Context, sc model.Scope, action string, entry model.LogEntry, detail string) {
	if uc.actUC == nil {
		return
	}

	if detail == "" {
		detail = fmt.Sprintf("district %s", entry.DistrictID)
	}

	if err := uc.actUC.Record(ctx, activity.RecordInput{
		Actor:      sc.Username,
		Action:     action,
		TargetType: string(entry.Kind),
		TargetID:   entry.ID,
		Detail:     detail,
	}); err != nil {
		uc.l.Warnf(ctx, "internal.alertlog.usecase.recordActivity: %v", err)
	}
}
