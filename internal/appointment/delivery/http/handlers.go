package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/pkg/response"
)

// List godoc
// @Summary     List appointments
// @Description Fetches upcoming events from Google Calendar and returns them ordered by start time.
// @Tags        Appointments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized or calendar access revoked"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/appointments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Refresh(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Appointment statistics
// @Description Summarizes the session's appointments: upcoming/completed counts, attendee total, monthly activity, next five entries.
// @Tags        Appointments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/appointments/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
