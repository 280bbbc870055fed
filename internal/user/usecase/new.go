package usecase

import (
	"aquamon-api/internal/user"
	"aquamon-api/internal/user/repository"
	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/scope"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	jwtMgr scope.Manager
}

func New(l pkgLog.Logger, repo repository.Repository, jwtMgr scope.Manager) user.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		jwtMgr: jwtMgr,
	}
}
