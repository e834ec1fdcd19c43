package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Appends the user's message, runs appointment extraction, and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message text"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "A previous message is still being processed"
// @Failure     429 {object} response.Resp "Too many messages"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.HandleMessage(ctx, sc, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// List godoc
// @Summary     Get the chat transcript
// @Description Returns the session's messages, oldest first. A fresh session starts with the assistant greeting.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/messages [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Transcript(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcript: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
