package middleware

import (
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/scope"
)

// Role constants checked by RequireRole.
const (
	RoleAdmin    = scope.RoleAdmin
	RoleOperator = scope.RoleOperator
)

type Middleware struct {
	l          pkgLog.Logger
	jwtManager scope.Manager
}

func New(l pkgLog.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
