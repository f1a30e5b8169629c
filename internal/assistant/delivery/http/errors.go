package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	pkgErrors "jarvis-assistant/pkg/errors"
	"jarvis-assistant/pkg/response"
)

var errTextRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The spoken message of a ReplyError becomes the response message.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg := h.unexpected
	var re *assistant.ReplyError
	if errors.As(err, &re) && re.Message != "" {
		msg = re.Message
	}

	switch {
	case errors.Is(err, assistant.ErrEmptyText),
		errors.Is(err, assistant.ErrNoPendingExecution),
		errors.Is(err, assistant.ErrNoResults):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, assistant.ErrConfirmationRequired):
		return pkgErrors.NewHTTPError(http.StatusConflict, msg)
	case errors.Is(err, assistant.ErrCollaboratorUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msg)
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, h.unexpected)
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	ctx := c.Request.Context()
	httpErr := h.mapError(err)
	if httpErr.IsClientError() {
		h.l.Warnf(ctx, "internal.assistant.delivery.http: %v", err)
	} else {
		h.l.Errorf(ctx, "internal.assistant.delivery.http: %v", err)
	}
	response.Fail(c, httpErr.StatusCode, httpErr.Message)
}
