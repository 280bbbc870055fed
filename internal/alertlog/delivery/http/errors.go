package http

import (
	"net/http"

	"aquamon-api/internal/alertlog"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
)

var errMapping = response.ErrorMapping{
	alertlog.ErrEntryNotFound:      pkgErrors.NewNotFoundHTTPError("Entry not found"),
	alertlog.ErrDistrictNotFound:   pkgErrors.NewNotFoundHTTPError("District not found"),
	alertlog.ErrInvalidSeverity:    pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid severity"),
	alertlog.ErrNoAttachment:       pkgErrors.NewNotFoundHTTPError("Entry has no attachment"),
	alertlog.ErrAttachmentsOffline: pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Attachment storage is not configured", http.StatusServiceUnavailable),
}
