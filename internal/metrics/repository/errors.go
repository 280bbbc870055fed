package repository

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDistrictViolation = errors.New("district does not exist")
)
