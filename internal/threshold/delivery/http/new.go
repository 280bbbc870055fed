package http

import (
	"aquamon-api/internal/threshold"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc threshold.UseCase
}

// Handler handles threshold setting HTTP requests.
type Handler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
}

func New(l pkgLog.Logger, uc threshold.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
