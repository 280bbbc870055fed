package usecase

import (
	"aquamon-api/internal/threshold"
	"aquamon-api/internal/threshold/repository"
	pkgLog "aquamon-api/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache repository.Cache
}

func New(l pkgLog.Logger, repo repository.Repository, cache repository.Cache) threshold.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
