package usecase

import (
	"aquamon-api/internal/activity"
	"aquamon-api/internal/activity/repository"
	pkgLog "aquamon-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) activity.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
