package http

import (
	"aquamon-api/internal/metrics"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc metrics.UseCase
}

// Handler handles daily metric HTTP requests.
type Handler interface {
	UpsertDaily(c *gin.Context)
	GetDaily(c *gin.Context)
	Series(c *gin.Context)
}

func New(l pkgLog.Logger, uc metrics.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
