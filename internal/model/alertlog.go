package model

import "time"

// LogKind distinguishes the two resolvable entry families.
type LogKind string

const (
	KindAlert         LogKind = "alert"
	KindProblemReport LogKind = "problem_report"
)

// LogEntry is a resolvable incident record: either a threshold alert
// raised automatically during ingestion, or a problem report filed by
// an operator. Both share the same resolve/reopen lifecycle.
type LogEntry struct {
	ID          string     `json:"id"`
	Kind        LogKind    `json:"kind"`
	DistrictID  string     `json:"district_id"`
	MetricName  string     `json:"metric_name,omitempty"`
	Severity    Severity   `json:"severity,omitempty"`
	Description string     `json:"description"`
	Attachment  string     `json:"attachment,omitempty"` // stored object name, reports only
	IsResolved  bool       `json:"is_resolved"`
	ResolvedBy  *string    `json:"resolved_by"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
