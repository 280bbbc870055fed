package response

import (
	"encoding/json"
	"time"

	"aquamon-api/pkg/errors"
)

// Resp is the JSON envelope for all API responses.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors at the delivery boundary.
type ErrorMapping map[error]*errors.HTTPError

// Date marshals as a bare calendar date.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime marshals in local date-time form.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
