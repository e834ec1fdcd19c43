package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/pkg/response"
)

// Login godoc
// @Summary     Sign in with Google
// @Description Validates the Google OAuth access token and creates a session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Google access token"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Token rejected by Google"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Ends the session and revokes the Google token best-effort.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sc.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user's profile.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := h.uc.Me(ctx, sc.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(user))
}
