package http

import (
	"net/http"

	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Create registers a district.
// @Summary Create district
// @Tags District
// @Security BearerAuth
// @Param body body createReq true "District"
// @Success 200 {object} response.Resp{data=districtResp}
// @Router /api/v1/districts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.district.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDistrictResp(o.District))
}

// Update updates a district.
// @Summary Update district
// @Tags District
// @Security BearerAuth
// @Param id path string true "District ID"
// @Param body body updateReq true "Fields to update"
// @Success 200 {object} response.Resp{data=districtResp}
// @Router /api/v1/districts/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.district.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDistrictResp(o.District))
}

// Detail returns one district.
// @Summary Get district
// @Tags District
// @Security BearerAuth
// @Param id path string true "District ID"
// @Success 200 {object} response.Resp{data=districtResp}
// @Router /api/v1/districts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDistrictResp(o.District))
}

// List returns all districts.
// @Summary List districts
// @Tags District
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=[]districtResp}
// @Router /api/v1/districts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	districts, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newListResp(districts))
}
