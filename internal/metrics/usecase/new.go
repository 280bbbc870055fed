package usecase

import (
	"aquamon-api/internal/activity"
	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/metrics"
	"aquamon-api/internal/metrics/repository"
	"aquamon-api/internal/threshold"
	pkgLog "aquamon-api/pkg/log"
)

type usecase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	thresholdUC threshold.UseCase
	alertUC     alertlog.UseCase
	actUC       activity.UseCase
}

// New creates the metrics usecase. alertUC and actUC may be nil, which
// disables alert raising and activity recording.
func New(l pkgLog.Logger, repo repository.Repository, thresholdUC threshold.UseCase, alertUC alertlog.UseCase, actUC activity.UseCase) metrics.UseCase {
	return &usecase{
		l:           l,
		repo:        repo,
		thresholdUC: thresholdUC,
		alertUC:     alertUC,
		actUC:       actUC,
	}
}
