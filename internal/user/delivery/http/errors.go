package http

import (
	"net/http"

	"aquamon-api/internal/user"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
)

var errMapping = response.ErrorMapping{
	user.ErrUserNotFound:       pkgErrors.NewNotFoundHTTPError("User not found"),
	user.ErrUserExists:         pkgErrors.NewConflictHTTPError("Username is already taken"),
	user.ErrInvalidCredentials: pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid username or password", http.StatusUnauthorized),
	user.ErrInvalidRole:        pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid role"),
}
