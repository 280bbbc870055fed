package http

import (
	"aquamon-api/internal/district"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
)

var errMapping = response.ErrorMapping{
	district.ErrDistrictNotFound: pkgErrors.NewNotFoundHTTPError("District not found"),
	district.ErrDistrictExists:   pkgErrors.NewConflictHTTPError("District already exists"),
}
