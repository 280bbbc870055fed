package usecase

import (
	"context"
	"fmt"
	"path"

	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/alertlog/repository"
	"aquamon-api/internal/model"
	pkgMinio "aquamon-api/pkg/minio"

	"github.com/google/uuid"
)

// fallbackPrincipal is stamped when the caller has no authenticated
// identity, e.g. entries resolved through the ingestion job.
const fallbackPrincipal = "Admin User"

func principal(sc model.Scope) string {
	if sc.Username != "" {
		return sc.Username
	}
	return fallbackPrincipal
}

func (uc *usecase) CreateAlert(ctx context.Context, sc model.Scope, ip alertlog.CreateAlertInput) (alertlog.EntryOutput, error) {
	switch ip.Severity {
	case model.SeverityWarning, model.SeverityCritical:
	default:
		return alertlog.EntryOutput{}, alertlog.ErrInvalidSeverity
	}

	entry := model.LogEntry{
		Kind:        model.KindAlert,
		DistrictID:  ip.DistrictID,
		MetricName:  ip.MetricName,
		Severity:    ip.Severity,
		Description: ip.Description,
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Entry: entry})
	if err != nil {
		if err == repository.ErrNotFound {
			return alertlog.EntryOutput{}, alertlog.ErrDistrictNotFound
		}
		uc.l.Errorf(ctx, "internal.alertlog.usecase.CreateAlert: %v", err)
		return alertlog.EntryOutput{}, err
	}

	uc.publishEvent(ctx, eventAlertRaised, created)
	uc.recordActivity(ctx, sc, "alert.raised", created,
		fmt.Sprintf("%s %s alert", created.MetricName, created.Severity))

	return alertlog.EntryOutput{Entry: created}, nil
}

func (uc *usecase) CreateReport(ctx context.Context, sc model.Scope, ip alertlog.CreateReportInput) (alertlog.EntryOutput, error) {
	entry := model.LogEntry{
		Kind:        model.KindProblemReport,
		DistrictID:  ip.DistrictID,
		Description: ip.Description,
	}

	if ip.Attachment != nil {
		objectName, err := uc.uploadAttachment(ctx, ip.Attachment)
		if err != nil {
			return alertlog.EntryOutput{}, err
		}
		entry.Attachment = objectName
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Entry: entry})
	if err != nil {
		if err == repository.ErrNotFound {
			return alertlog.EntryOutput{}, alertlog.ErrDistrictNotFound
		}
		uc.l.Errorf(ctx, "internal.alertlog.usecase.CreateReport: %v", err)
		return alertlog.EntryOutput{}, err
	}

	uc.recordActivity(ctx, sc, "report.filed", created, created.Description)

	return alertlog.EntryOutput{Entry: created}, nil
}

func (uc *usecase) SetResolution(ctx context.Context, sc model.Scope, ip alertlog.SetResolutionInput) (alertlog.EntryOutput, error) {
	updated, err := uc.repo.SetResolution(ctx, repository.ResolutionOptions{
		Kind:       ip.Kind,
		ID:         ip.ID,
		Resolve:    ip.IsResolved,
		ResolvedBy: principal(sc),
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return alertlog.EntryOutput{}, alertlog.ErrEntryNotFound
		}
		uc.l.Errorf(ctx, "internal.alertlog.usecase.SetResolution: %v", err)
		return alertlog.EntryOutput{}, err
	}

	action := "reopened"
	event := eventAlertReopened
	if ip.IsResolved {
		action = "resolved"
		event = eventAlertResolved
	}

	if ip.Kind == model.KindAlert {
		uc.publishEvent(ctx, event, updated)
	}
	uc.recordActivity(ctx, sc, string(ip.Kind)+"."+action, updated, "")

	return alertlog.EntryOutput{Entry: updated}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, kind model.LogKind, id string) (alertlog.EntryOutput, error) {
	entry, err := uc.repo.Detail(ctx, kind, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return alertlog.EntryOutput{}, alertlog.ErrEntryNotFound
		}
		uc.l.Errorf(ctx, "internal.alertlog.usecase.Detail: %v", err)
		return alertlog.EntryOutput{}, err
	}

	return alertlog.EntryOutput{Entry: entry}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip alertlog.GetInput) (alertlog.GetOutput, error) {
	entries, pag, err := uc.repo.Get(ctx, repository.GetOptions{
		Kind: ip.Kind,
		Filter: repository.Filter{
			DistrictID: ip.Filter.DistrictID,
			IsResolved: ip.Filter.IsResolved,
			Severity:   ip.Filter.Severity,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertlog.usecase.Get: %v", err)
		return alertlog.GetOutput{}, err
	}

	return alertlog.GetOutput{
		Entries:   entries,
		Paginator: pag,
	}, nil
}

func (uc *usecase) AttachmentURL(ctx context.Context, sc model.Scope, id string) (string, error) {
	if uc.storage == nil {
		return "", alertlog.ErrAttachmentsOffline
	}

	entry, err := uc.repo.Detail(ctx, model.KindProblemReport, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return "", alertlog.ErrEntryNotFound
		}
		uc.l.Errorf(ctx, "internal.alertlog.usecase.AttachmentURL.Detail: %v", err)
		return "", err
	}
	if entry.Attachment == "" {
		return "", alertlog.ErrNoAttachment
	}

	url, err := uc.storage.PresignedGetURL(ctx, entry.Attachment, attachmentURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertlog.usecase.AttachmentURL.PresignedGetURL: %v", err)
		return "", err
	}

	return url, nil
}

func (uc *usecase) uploadAttachment(ctx context.Context, att *alertlog.AttachmentUpload) (string, error) {
	if uc.storage == nil {
		return "", alertlog.ErrAttachmentsOffline
	}

	objectName := uuid.NewString() + path.Ext(att.FileName)
	if _, err := uc.storage.UploadObject(ctx, &pkgMinio.UploadRequest{
		ObjectName:   objectName,
		OriginalName: att.FileName,
		Reader:       att.Reader,
		Size:         att.Size,
		ContentType:  att.ContentType,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.alertlog.usecase.uploadAttachment: %v", err)
		return "", err
	}

	return objectName, nil
}
