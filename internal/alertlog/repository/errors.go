package repository

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidKind = errors.New("invalid entry kind")
)
