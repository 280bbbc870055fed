package repository

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	// ErrCacheMiss is returned by Cache when no fresh entry exists.
	ErrCacheMiss = errors.New("cache miss")
)
