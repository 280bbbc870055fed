package usecase

import (
	"aquamon-api/internal/district"
	"aquamon-api/internal/district/repository"
	pkgLog "aquamon-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) district.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
