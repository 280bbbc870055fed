package http

import (
	"net/http"
	"time"

	"aquamon-api/internal/metrics"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// UpsertDaily ingests one district-day record.
// @Summary Ingest daily metrics
// @Tags Metrics
// @Security BearerAuth
// @Param body body upsertReq true "Daily record"
// @Success 200 {object} response.Resp{data=metricResp}
// @Router /api/v1/metrics/daily [POST]
func (h *handler) UpsertDaily(c *gin.Context) {
	ctx := c.Request.Context()

	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.metrics.delivery.http.UpsertDaily.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Date must be in YYYY-MM-DD form"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.UpsertDaily(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newMetricResp(o.Metric))
}

// GetDaily returns one district-day record.
// @Summary Get daily metrics
// @Tags Metrics
// @Security BearerAuth
// @Param district_id query string true "District ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Resp{data=metricResp}
// @Router /api/v1/metrics/daily [GET]
func (h *handler) GetDaily(c *gin.Context) {
	ctx := c.Request.Context()

	var req getDailyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.metrics.delivery.http.GetDaily.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"), nil)
		return
	}

	date, err := time.Parse(response.DateFormat, req.Date)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Date must be in YYYY-MM-DD form"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.GetDaily(ctx, sc, metrics.GetDailyInput{
		DistrictID: req.DistrictID,
		Date:       date,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newMetricResp(o.Metric))
}

// Series returns per-district chronological series for a date range.
// @Summary Get metric series
// @Tags Metrics
// @Security BearerAuth
// @Param district_ids query string false "Comma-separated district IDs"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Resp{data=[]seriesResp}
// @Router /api/v1/metrics/series [GET]
func (h *handler) Series(c *gin.Context) {
	ctx := c.Request.Context()

	var req seriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.metrics.delivery.http.Series.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"), nil)
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Dates must be in YYYY-MM-DD form"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	series, err := h.uc.Series(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newSeriesResp(series))
}
