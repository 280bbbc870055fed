package http

import (
	"aquamon-api/internal/district"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc district.UseCase
}

// Handler handles district registry HTTP requests.
type Handler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
}

func New(l pkgLog.Logger, uc district.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
