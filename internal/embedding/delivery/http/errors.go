package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"infrabed/internal/embedding"
	"infrabed/pkg/response"
)

// mapError writes the HTTP response for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, embedding.ErrModelNotFound):
		response.NotFound(c, "Model not found")
	case errors.Is(err, embedding.ErrEmptySentence):
		response.ValidationError(c, []response.FieldError{{Loc: []string{"body"}, Msg: err.Error()}})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		response.Error(c, http.StatusServiceUnavailable, "Request cancelled")
	default:
		response.InternalError(c, err)
	}
}
