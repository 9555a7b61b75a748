package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"infrabed/pkg/log"
	"infrabed/pkg/response"
)

// RequestID tags each request with an X-Request-ID, reusing the caller's
// when present, and threads it into the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs one line per request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Signed rejects requests that fail signature verification or exceed the
// per-key rate limit.
func (m Middleware) Signed() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Signed: failed to read body: %v", err)
			response.Error(c, http.StatusBadRequest, "Unreadable request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		path := strings.TrimPrefix(c.Request.URL.Path, m.prefix)
		apiKey, err := m.verifier.Verify(c.Request, path, body)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Signed: rejected key=%q path=%s: %v", apiKey, path, err)
			response.Unauthorized(c, detailFor(err))
			return
		}

		if err := m.verifier.CheckRateLimit(apiKey); err != nil {
			m.l.Warnf(ctx, "middleware.Signed: %v", err)
			response.TooManyRequests(c, "Rate limit exceeded")
			return
		}

		c.Set(ContextKeyAPIKey, apiKey)
		c.Next()
	}
}

func detailFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeaders):
		return "Missing authentication headers"
	case errors.Is(err, ErrUnknownAPIKey):
		return "Invalid API key"
	case errors.Is(err, ErrInvalidNonce), errors.Is(err, ErrStaleNonce):
		return "Invalid nonce"
	case errors.Is(err, ErrReplayedRequest):
		return "Nonce already used"
	default:
		return "Invalid signature"
	}
}
