package http

import (
	"aquamon-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers district registry routes.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	r.GET("", h.List)
	r.GET("/:id", h.Detail)
	r.POST("", mw.RequireRole(middleware.RoleAdmin), h.Create)
	r.PUT("/:id", mw.RequireRole(middleware.RoleAdmin), h.Update)
}
