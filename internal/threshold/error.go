package threshold

import "errors"

var (
	ErrSettingNotFound   = errors.New("threshold setting not found")
	ErrMetricNameExists  = errors.New("threshold setting already exists for metric")
	ErrInvalidMetricName = errors.New("invalid metric name")
	ErrInvalidBand       = errors.New("band min must not exceed band max")
)
