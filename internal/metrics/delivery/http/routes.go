package http

import (
	"aquamon-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers daily metric routes.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	r.POST("/daily", h.UpsertDaily)
	r.GET("/daily", h.GetDaily)
	r.GET("/series", h.Series)
}
