package http

import (
	"net/http"

	"aquamon-api/internal/metrics"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
)

var errMapping = response.ErrorMapping{
	metrics.ErrMetricNotFound:   pkgErrors.NewNotFoundHTTPError("Daily metric not found"),
	metrics.ErrDistrictNotFound: pkgErrors.NewNotFoundHTTPError("District not found"),
	metrics.ErrInvalidValue:     pkgErrors.NewHTTPError(http.StatusBadRequest, "Metric values must be finite numbers"),
	metrics.ErrInvalidRange:     pkgErrors.NewHTTPError(http.StatusBadRequest, "Range start must not be after range end"),
	metrics.ErrMissingDate:      pkgErrors.NewHTTPError(http.StatusBadRequest, "Date is required"),
}
