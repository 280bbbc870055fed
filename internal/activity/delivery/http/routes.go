package http

import (
	"aquamon-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers activity log routes.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	r.GET("", h.Get)
}
