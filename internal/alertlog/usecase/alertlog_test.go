package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/alertlog/repository"
	"aquamon-api/internal/model"
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/paginator"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
}

// fakeEntryRepo stores a single entry and applies the resolution
// transition the way the SQL statement does.
type fakeEntryRepo struct {
	entry     *model.LogEntry
	createErr error
	lastRes   repository.ResolutionOptions
}

func (r *fakeEntryRepo) Create(_ context.Context, opts repository.CreateOptions) (model.LogEntry, error) {
	if r.createErr != nil {
		return model.LogEntry{}, r.createErr
	}
	e := opts.Entry
	e.ID = "entry-1"
	r.entry = &e
	return e, nil
}

func (r *fakeEntryRepo) Detail(_ context.Context, kind model.LogKind, id string) (model.LogEntry, error) {
	if r.entry == nil || r.entry.ID != id || r.entry.Kind != kind {
		return model.LogEntry{}, repository.ErrNotFound
	}
	return *r.entry, nil
}

func (r *fakeEntryRepo) Get(_ context.Context, _ repository.GetOptions) ([]model.LogEntry, paginator.Paginator, error) {
	if r.entry == nil {
		return nil, paginator.Paginator{}, nil
	}
	return []model.LogEntry{*r.entry}, paginator.Paginator{Total: 1}, nil
}

func (r *fakeEntryRepo) SetResolution(_ context.Context, opts repository.ResolutionOptions) (model.LogEntry, error) {
	r.lastRes = opts
	if r.entry == nil || r.entry.ID != opts.ID || r.entry.Kind != opts.Kind {
		return model.LogEntry{}, repository.ErrNotFound
	}

	if opts.Resolve {
		now := time.Now()
		r.entry.IsResolved = true
		r.entry.ResolvedBy = &opts.ResolvedBy
		r.entry.ResolvedAt = &now
	} else {
		r.entry.IsResolved = false
		r.entry.ResolvedBy = nil
		r.entry.ResolvedAt = nil
	}
	return *r.entry, nil
}

type fakePublisher struct {
	keys     []string
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, key string, value []byte) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, value)
	return nil
}

func seededRepo(kind model.LogKind) *fakeEntryRepo {
	return &fakeEntryRepo{entry: &model.LogEntry{
		ID:         "entry-1",
		Kind:       kind,
		DistrictID: "d1",
		MetricName: model.MetricPressure,
		Severity:   model.SeverityCritical,
	}}
}

func TestSetResolution_ResolveStampsPrincipal(t *testing.T) {
	repo := seededRepo(model.KindAlert)
	uc := New(testLogger(), repo, nil, nil, nil)

	out, err := uc.SetResolution(context.Background(), model.Scope{Username: "operator1"}, alertlog.SetResolutionInput{
		Kind:       model.KindAlert,
		ID:         "entry-1",
		IsResolved: true,
	})
	if err != nil {
		t.Fatalf("SetResolution() error = %v", err)
	}

	e := out.Entry
	if !e.IsResolved {
		t.Error("IsResolved = false, want true")
	}
	if e.ResolvedBy == nil || *e.ResolvedBy != "operator1" {
		t.Errorf("ResolvedBy = %v, want operator1", e.ResolvedBy)
	}
	if e.ResolvedAt == nil {
		t.Error("ResolvedAt = nil, want timestamp")
	}
}

func TestSetResolution_FallbackPrincipal(t *testing.T) {
	repo := seededRepo(model.KindAlert)
	uc := New(testLogger(), repo, nil, nil, nil)

	out, err := uc.SetResolution(context.Background(), model.Scope{}, alertlog.SetResolutionInput{
		Kind:       model.KindAlert,
		ID:         "entry-1",
		IsResolved: true,
	})
	if err != nil {
		t.Fatalf("SetResolution() error = %v", err)
	}

	if out.Entry.ResolvedBy == nil || *out.Entry.ResolvedBy != fallbackPrincipal {
		t.Errorf("ResolvedBy = %v, want %q", out.Entry.ResolvedBy, fallbackPrincipal)
	}
}

func TestSetResolution_ResolveTwiceRestamps(t *testing.T) {
	repo := seededRepo(model.KindProblemReport)
	uc := New(testLogger(), repo, nil, nil, nil)

	ip := alertlog.SetResolutionInput{Kind: model.KindProblemReport, ID: "entry-1", IsResolved: true}

	if _, err := uc.SetResolution(context.Background(), model.Scope{Username: "first"}, ip); err != nil {
		t.Fatalf("first SetResolution() error = %v", err)
	}
	out, err := uc.SetResolution(context.Background(), model.Scope{Username: "second"}, ip)
	if err != nil {
		t.Fatalf("second SetResolution() error = %v", err)
	}

	if out.Entry.ResolvedBy == nil || *out.Entry.ResolvedBy != "second" {
		t.Errorf("ResolvedBy = %v, want second", out.Entry.ResolvedBy)
	}
}

func TestSetResolution_ReopenClearsResolution(t *testing.T) {
	repo := seededRepo(model.KindAlert)
	uc := New(testLogger(), repo, nil, nil, nil)

	if _, err := uc.SetResolution(context.Background(), model.Scope{Username: "op"}, alertlog.SetResolutionInput{
		Kind: model.KindAlert, ID: "entry-1", IsResolved: true,
	}); err != nil {
		t.Fatalf("resolve error = %v", err)
	}

	out, err := uc.SetResolution(context.Background(), model.Scope{Username: "op"}, alertlog.SetResolutionInput{
		Kind: model.KindAlert, ID: "entry-1", IsResolved: false,
	})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}

	e := out.Entry
	if e.IsResolved {
		t.Error("IsResolved = true after reopen, want false")
	}
	if e.ResolvedBy != nil {
		t.Errorf("ResolvedBy = %v after reopen, want nil", e.ResolvedBy)
	}
	if e.ResolvedAt != nil {
		t.Errorf("ResolvedAt = %v after reopen, want nil", e.ResolvedAt)
	}
}

func TestSetResolution_NotFound(t *testing.T) {
	uc := New(testLogger(), &fakeEntryRepo{}, nil, nil, nil)

	_, err := uc.SetResolution(context.Background(), model.Scope{}, alertlog.SetResolutionInput{
		Kind: model.KindAlert, ID: "missing", IsResolved: true,
	})
	if !errors.Is(err, alertlog.ErrEntryNotFound) {
		t.Errorf("SetResolution() error = %v, want %v", err, alertlog.ErrEntryNotFound)
	}
}

func TestSetResolution_PublishesAlertEventsOnly(t *testing.T) {
	tests := []struct {
		name          string
		kind          model.LogKind
		wantPublished int
	}{
		{name: "alert lifecycle is published", kind: model.KindAlert, wantPublished: 1},
		{name: "report lifecycle is not published", kind: model.KindProblemReport, wantPublished: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &fakePublisher{}
			uc := New(testLogger(), seededRepo(tt.kind), nil, pub, nil)

			if _, err := uc.SetResolution(context.Background(), model.Scope{Username: "op"}, alertlog.SetResolutionInput{
				Kind: tt.kind, ID: "entry-1", IsResolved: true,
			}); err != nil {
				t.Fatalf("SetResolution() error = %v", err)
			}

			if len(pub.keys) != tt.wantPublished {
				t.Fatalf("published %d events, want %d", len(pub.keys), tt.wantPublished)
			}
			if tt.wantPublished == 1 {
				var ev alertEvent
				if err := json.Unmarshal(pub.payloads[0], &ev); err != nil {
					t.Fatalf("payload unmarshal error = %v", err)
				}
				if ev.Type != eventAlertResolved {
					t.Errorf("event type = %q, want %q", ev.Type, eventAlertResolved)
				}
				if pub.keys[0] != "entry-1" {
					t.Errorf("event key = %q, want entry-1", pub.keys[0])
				}
			}
		})
	}
}

func TestCreateAlert_SeverityValidation(t *testing.T) {
	tests := []struct {
		name     string
		severity model.Severity
		wantErr  error
	}{
		{name: "warning accepted", severity: model.SeverityWarning},
		{name: "critical accepted", severity: model.SeverityCritical},
		{name: "good rejected", severity: model.SeverityGood, wantErr: alertlog.ErrInvalidSeverity},
		{name: "unknown rejected", severity: model.SeverityUnknown, wantErr: alertlog.ErrInvalidSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(testLogger(), &fakeEntryRepo{}, nil, nil, nil)
			out, err := uc.CreateAlert(context.Background(), model.Scope{}, alertlog.CreateAlertInput{
				DistrictID: "d1",
				MetricName: model.MetricPressure,
				Severity:   tt.severity,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateAlert() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && out.Entry.Kind != model.KindAlert {
				t.Errorf("Kind = %q, want %q", out.Entry.Kind, model.KindAlert)
			}
		})
	}
}

func TestCreateAlert_UnknownDistrict(t *testing.T) {
	uc := New(testLogger(), &fakeEntryRepo{createErr: repository.ErrNotFound}, nil, nil, nil)

	_, err := uc.CreateAlert(context.Background(), model.Scope{}, alertlog.CreateAlertInput{
		DistrictID: "missing",
		MetricName: model.MetricPressure,
		Severity:   model.SeverityWarning,
	})
	if !errors.Is(err, alertlog.ErrDistrictNotFound) {
		t.Errorf("CreateAlert() error = %v, want %v", err, alertlog.ErrDistrictNotFound)
	}
}

func TestCreateReport_AttachmentWithoutStorage(t *testing.T) {
	uc := New(testLogger(), &fakeEntryRepo{}, nil, nil, nil)

	_, err := uc.CreateReport(context.Background(), model.Scope{}, alertlog.CreateReportInput{
		DistrictID:  "d1",
		Description: "leak on main line",
		Attachment:  &alertlog.AttachmentUpload{FileName: "photo.jpg"},
	})
	if !errors.Is(err, alertlog.ErrAttachmentsOffline) {
		t.Errorf("CreateReport() error = %v, want %v", err, alertlog.ErrAttachmentsOffline)
	}
}

func TestAttachmentURL_NoAttachment(t *testing.T) {
	repo := &fakeEntryRepo{entry: &model.LogEntry{
		ID:         "entry-1",
		Kind:       model.KindProblemReport,
		DistrictID: "d1",
	}}
	// Storage offline: checked before the entry lookup.
	uc := New(testLogger(), repo, nil, nil, nil)

	_, err := uc.AttachmentURL(context.Background(), model.Scope{}, "entry-1")
	if !errors.Is(err, alertlog.ErrAttachmentsOffline) {
		t.Errorf("AttachmentURL() error = %v, want %v", err, alertlog.ErrAttachmentsOffline)
	}
}
