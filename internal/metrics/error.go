package metrics

import "errors"

var (
	ErrMetricNotFound   = errors.New("daily metric not found")
	ErrDistrictNotFound = errors.New("district not found")
	ErrInvalidValue     = errors.New("metric value must be a finite number")
	ErrInvalidRange     = errors.New("range start must not be after range end")
	ErrMissingDate      = errors.New("date is required")
)
