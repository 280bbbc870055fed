package http

import (
	"net/http"

	"aquamon-api/internal/user"
	pkgErrors "aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Register creates an operator or admin account.
// @Summary Register account
// @Tags Auth
// @Param body body registerReq true "Account"
// @Success 200 {object} response.Resp{data=userResp}
// @Router /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Register.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newUserResp(o.User))
}

// Login exchanges credentials for a bearer token.
// @Summary Log in
// @Tags Auth
// @Param body body loginReq true "Credentials"
// @Success 200 {object} response.Resp{data=loginResp}
// @Router /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Login.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"), nil)
		return
	}

	o, err := h.uc.Login(ctx, user.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, loginResp{
		User:  newUserResp(o.User),
		Token: o.Token,
	})
}

// Me returns the authenticated account.
// @Summary Get own account
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=userResp}
// @Router /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := scope.GetScopeFromContext(ctx)
	o, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newUserResp(o.User))
}
