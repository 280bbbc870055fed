package alertlog

import "errors"

var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrDistrictNotFound   = errors.New("district not found")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrNoAttachment       = errors.New("entry has no attachment")
	ErrAttachmentsOffline = errors.New("attachment storage is not configured")
)
