package http

import (
	"net/http"

	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Create creates a threshold setting.
// @Summary Create threshold setting
// @Tags Threshold
// @Security BearerAuth
// @Param body body createReq true "Setting"
// @Success 200 {object} response.Resp{data=settingResp}
// @Router /api/v1/thresholds [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.threshold.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newSettingResp(o.Setting))
}

// Update updates a threshold setting.
// @Summary Update threshold setting
// @Tags Threshold
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Param body body updateReq true "Fields to update"
// @Success 200 {object} response.Resp{data=settingResp}
// @Router /api/v1/thresholds/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.threshold.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newSettingResp(o.Setting))
}

// Delete removes a threshold setting.
// @Summary Delete threshold setting
// @Tags Threshold
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/thresholds/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, nil)
}

// Detail returns one threshold setting.
// @Summary Get threshold setting
// @Tags Threshold
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Success 200 {object} response.Resp{data=settingResp}
// @Router /api/v1/thresholds/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newSettingResp(o.Setting))
}

// List returns all threshold settings.
// @Summary List threshold settings
// @Tags Threshold
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=[]settingResp}
// @Router /api/v1/thresholds [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	settings, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newListResp(settings))
}
