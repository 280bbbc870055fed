package http

import (
	"aquamon-api/internal/activity"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc activity.UseCase
}

// Handler handles activity log HTTP requests.
type Handler interface {
	Get(c *gin.Context)
}

func New(l pkgLog.Logger, uc activity.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
