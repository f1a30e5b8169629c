package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

// Command godoc
// @Summary     Handle an utterance
// @Description Routes a spoken or typed command. Risky or model-suggested commands are held until confirmed.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Utterance"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.ErrorBody "Bad Request"
// @Failure     409  {object} response.ErrorBody "A command is waiting for confirmation"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.ErrorBody "Upstream service unavailable"
// @Failure     500  {object} response.ErrorBody "Internal Server Error"
// @Router      /api/v1/assistant/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	reply, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newCommandResp(reply))
}

// Confirm godoc
// @Summary     Confirm the pending command
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} commandResp
// @Failure     400 {object} response.ErrorBody "Nothing is pending"
// @Router      /api/v1/assistant/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	reply, err := h.uc.Confirm(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newCommandResp(reply))
}

// Cancel godoc
// @Summary     Cancel the pending command
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} commandResp
// @Failure     400 {object} response.ErrorBody "Nothing is pending"
// @Router      /api/v1/assistant/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	reply, err := h.uc.Cancel(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newCommandResp(reply))
}

// Pending godoc
// @Summary     Show the pending command
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} pendingResp
// @Failure     404 {object} response.ErrorBody "Nothing is pending"
// @Router      /api/v1/assistant/pending [GET]
func (h *handler) Pending(c *gin.Context) {
	p, ok := h.uc.Pending(c.Request.Context())
	if !ok {
		response.Fail(c, http.StatusNotFound, "No pending command.")
		return
	}

	response.JSON(c, http.StatusOK, h.newPendingResp(p))
}

// Stats godoc
// @Summary     Learning statistics
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/assistant/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.newStatsResp(h.uc.Stats(c.Request.Context())))
}
