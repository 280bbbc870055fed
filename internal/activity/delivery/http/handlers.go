package http

import (
	"net/http"

	"aquamon-api/internal/activity"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Get returns a paginated activity trail, newest first.
// @Summary List activities
// @Tags Activity
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Param actor query string false "Filter by actor"
// @Param target_type query string false "Filter by target type"
// @Success 200 {object} response.Resp{data=getResp}
// @Router /api/v1/activities [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.activity.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.Get(ctx, sc, activity.GetInput{
		Filter: activity.Filter{
			Actor:      req.Actor,
			TargetType: req.TargetType,
		},
		PaginateQuery: req.PaginateQuery,
	})
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newGetResp(o))
}
