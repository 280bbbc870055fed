package district

import "errors"

var (
	ErrDistrictNotFound = errors.New("district not found")
	ErrDistrictExists   = errors.New("district already exists")
)
