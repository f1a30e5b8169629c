package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}

// JSON sends a flat body without the Resp envelope.
// Assistant routes answer this way.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Fail sends {"error": message} with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
