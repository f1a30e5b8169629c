package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "jarvis-assistant/pkg/errors"
	"jarvis-assistant/pkg/response"
)

// Recovery turns a panic into a 500 and logs it.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
				if !c.Writer.Written() {
					response.Fail(c, http.StatusInternalServerError, pkgErrors.ErrInternalServerError.Message)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
