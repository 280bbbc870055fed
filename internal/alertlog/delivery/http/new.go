package http

import (
	"aquamon-api/internal/alertlog"
	pkgLog "aquamon-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc alertlog.UseCase
}

// Handler handles alert and problem report HTTP requests.
type Handler interface {
	ListAlerts(c *gin.Context)
	AlertDetail(c *gin.Context)
	ResolveAlert(c *gin.Context)

	ListReports(c *gin.Context)
	ReportDetail(c *gin.Context)
	CreateReport(c *gin.Context)
	ResolveReport(c *gin.Context)
	ReportAttachment(c *gin.Context)
}

func New(l pkgLog.Logger, uc alertlog.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
