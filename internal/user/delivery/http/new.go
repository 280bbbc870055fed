package http

import (
	"aquamon-api/internal/user"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

// Handler handles authentication HTTP requests.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

func New(l pkgLog.Logger, uc user.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
