package usecase

import (
	"aquamon-api/internal/activity"
	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/alertlog/repository"
	pkgLog "aquamon-api/pkg/log"
	pkgMinio "aquamon-api/pkg/minio"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	actUC    activity.UseCase
	pub      alertlog.Publisher
	storage  pkgMinio.MinIO
}

// New creates the alert/report lifecycle usecase. pub and storage may be
// nil, which disables event publishing and attachments respectively.
func New(l pkgLog.Logger, repo repository.Repository, actUC activity.UseCase, pub alertlog.Publisher, storage pkgMinio.MinIO) alertlog.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		actUC:   actUC,
		pub:     pub,
		storage: storage,
	}
}
