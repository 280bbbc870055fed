package errors

import "net/http"

const (
	StatusUnauthorized = http.StatusUnauthorized // 401
	StatusForbidden    = http.StatusForbidden    // 403
	StatusNotFound     = http.StatusNotFound     // 404
	StatusConflict     = http.StatusConflict     // 409
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Not found"
)
