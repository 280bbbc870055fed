package http

import (
	"aquamon-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers authentication routes.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", mw.Auth(), h.Me)
}
