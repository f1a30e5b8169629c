package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/config"
	"jarvis-assistant/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Recovery(), mw.RequestID())
	r.GET("/", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})...)
	return r
}

func do(r http.Handler, remote string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newEngine(mw)

	w := do(r, "10.0.0.1:1234", http.Header{HeaderRequestID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = do(r, "10.0.0.1:1234", nil)
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{PerMin: 20})
	r := newEngine(mw, mw.RateLimit())

	// burst is PerMin/10
	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(r, "10.0.0.1:1234", nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1:1234", nil).Code)

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, do(r, "10.0.0.2:1234", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{PerMin: 0})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, do(r, "10.0.0.1:1234", nil).Code)
	}
}

func TestRecovery(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newEngine(mw, func(c *gin.Context) { panic("boom") })

	w := do(r, "10.0.0.1:1234", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred."}`, w.Body.String())
}
