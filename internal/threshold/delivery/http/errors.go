package http

import (
	"net/http"

	"aquamon-api/internal/threshold"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
)

var errMapping = response.ErrorMapping{
	threshold.ErrSettingNotFound:   pkgErrors.NewNotFoundHTTPError("Threshold setting not found"),
	threshold.ErrMetricNameExists:  pkgErrors.NewConflictHTTPError("Threshold setting already exists for this metric"),
	threshold.ErrInvalidMetricName: pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown metric name"),
	threshold.ErrInvalidBand:       pkgErrors.NewHTTPError(http.StatusBadRequest, "Band minimum must not exceed maximum"),
}
