package http

import (
	"github.com/gin-gonic/gin"
)

// processCommandReq binds and validates the command request body.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errTextRequired
	}
	return req, req.validate()
}
