package http

import (
	"aquamon-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapAlertRoutes registers threshold alert routes.
func MapAlertRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	r.GET("", h.ListAlerts)
	r.GET("/:id", h.AlertDetail)
	r.PUT("/:id/resolve", h.ResolveAlert)
}

// MapReportRoutes registers problem report routes.
func MapReportRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.Use(mw.Auth())
	r.GET("", h.ListReports)
	r.GET("/:id", h.ReportDetail)
	r.POST("", h.CreateReport)
	r.PUT("/:id/resolve", h.ResolveReport)
	r.GET("/:id/attachment", h.ReportAttachment)
}
