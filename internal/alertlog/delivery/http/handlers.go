package http

import (
	"net/http"

	"aquamon-api/internal/alertlog"
	"aquamon-api/internal/model"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) list(c *gin.Context, kind model.LogKind) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertlog.delivery.http.list.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Get(ctx, sc, req.toInput(kind))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newListResp(o))
}

func (h *handler) detail(c *gin.Context, kind model.LogKind) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Detail(ctx, sc, kind, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newEntryResp(o.Entry))
}

func (h *handler) resolve(c *gin.Context, kind model.LogKind) {
	ctx := c.Request.Context()

	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertlog.delivery.http.resolve.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.SetResolution(ctx, sc, alertlog.SetResolutionInput{
		Kind:       kind,
		ID:         c.Param("id"),
		IsResolved: *req.IsResolved,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newEntryResp(o.Entry))
}

// ListAlerts returns paginated threshold alerts.
// @Summary List alerts
// @Tags Alert
// @Security BearerAuth
// @Param district_id query string false "Filter by district"
// @Param is_resolved query bool false "Filter by resolution state"
// @Param severity query string false "Filter by severity"
// @Success 200 {object} response.Resp{data=listResp}
// @Router /api/v1/alerts [GET]
func (h *handler) ListAlerts(c *gin.Context) { h.list(c, model.KindAlert) }

// AlertDetail returns one alert.
// @Summary Get alert
// @Tags Alert
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Resp{data=entryResp}
// @Router /api/v1/alerts/{id} [GET]
func (h *handler) AlertDetail(c *gin.Context) { h.detail(c, model.KindAlert) }

// ResolveAlert resolves or reopens an alert.
// @Summary Resolve or reopen alert
// @Tags Alert
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param body body resolveReq true "Resolution state"
// @Success 200 {object} response.Resp{data=entryResp}
// @Router /api/v1/alerts/{id}/resolve [PUT]
func (h *handler) ResolveAlert(c *gin.Context) { h.resolve(c, model.KindAlert) }

// ListReports returns paginated problem reports.
// @Summary List problem reports
// @Tags Report
// @Security BearerAuth
// @Param district_id query string false "Filter by district"
// @Param is_resolved query bool false "Filter by resolution state"
// @Success 200 {object} response.Resp{data=listResp}
// @Router /api/v1/reports [GET]
func (h *handler) ListReports(c *gin.Context) { h.list(c, model.KindProblemReport) }

// ReportDetail returns one problem report.
// @Summary Get problem report
// @Tags Report
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.Resp{data=entryResp}
// @Router /api/v1/reports/{id} [GET]
func (h *handler) ReportDetail(c *gin.Context) { h.detail(c, model.KindProblemReport) }

// ResolveReport resolves or reopens a problem report.
// @Summary Resolve or reopen report
// @Tags Report
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param body body resolveReq true "Resolution state"
// @Success 200 {object} response.Resp{data=entryResp}
// @Router /api/v1/reports/{id}/resolve [PUT]
func (h *handler) ResolveReport(c *gin.Context) { h.resolve(c, model.KindProblemReport) }

// CreateReport files a problem report with an optional attachment.
// @Summary File problem report
// @Tags Report
// @Security BearerAuth
// @Accept multipart/form-data
// @Param district_id formData string true "District ID"
// @Param description formData string true "Description"
// @Param attachment formData file false "Photo attachment"
// @Success 200 {object} response.Resp{data=entryResp}
// @Router /api/v1/reports [POST]
func (h *handler) CreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReportReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(ctx, "internal.alertlog.delivery.http.CreateReport.ShouldBind: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	ip := alertlog.CreateReportInput{
		DistrictID:  req.DistrictID,
		Description: req.Description,
	}

	if fileHeader, err := c.FormFile("attachment"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.l.Errorf(ctx, "internal.alertlog.delivery.http.CreateReport.Open: %v", err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Unreadable attachment"), nil)
			return
		}
		defer file.Close()

		ip.Attachment = &alertlog.AttachmentUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.CreateReport(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newEntryResp(o.Entry))
}

// ReportAttachment returns a time-limited download URL for a report attachment.
// @Summary Get report attachment URL
// @Tags Report
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.Resp{data=attachmentResp}
// @Router /api/v1/reports/{id}/attachment [GET]
func (h *handler) ReportAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	url, err := h.uc.AttachmentURL(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, attachmentResp{URL: url})
}
