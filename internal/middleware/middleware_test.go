package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"infrabed/pkg/log"
	"infrabed/pkg/signature"
)

func newTestEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestID())
	r.POST("/back/calcemb", m.Signed(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"api_key":    c.GetString(ContextKeyAPIKey),
			"request_id": log.RequestID(c.Request.Context()),
		})
	})
	return r
}

func TestMiddleware_Signed(t *testing.T) {
	m := New(log.NewNop(), Config{
		Credentials:     map[string]string{"key": "s3cr3t"},
		NonceTTL:        time.Minute,
		RateLimitPerMin: 600,
		Prefix:          "/back/",
	})
	r := newTestEngine(m)

	t.Run("Accepted", func(t *testing.T) {
		req := signedRequest(http.MethodPost, "/back/calcemb", "calcemb", signature.Nonce(time.Now()), "s3cr3t")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"api_key":"key"`)
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})

	t.Run("Bad Signature", func(t *testing.T) {
		req := signedRequest(http.MethodPost, "/back/calcemb", "calcemb", signature.Nonce(time.Now()), "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `{"detail":"Invalid signature"}`, w.Body.String())
	})

	t.Run("Unknown Key", func(t *testing.T) {
		req := signedRequest(http.MethodPost, "/back/calcemb", "calcemb", signature.Nonce(time.Now()), "s3cr3t")
		req.Header[signature.HeaderAPIKey] = []string{"nobody"}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `{"detail":"Invalid API key"}`, w.Body.String())
	})

	t.Run("Request ID Propagated", func(t *testing.T) {
		req := signedRequest(http.MethodPost, "/back/calcemb", "calcemb", signature.Nonce(time.Now().Add(time.Millisecond)), "s3cr3t")
		req.Header.Set(HeaderRequestID, "caller-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "caller-id", w.Header().Get(HeaderRequestID))
		assert.True(t, strings.Contains(w.Body.String(), `"request_id":"caller-id"`))
	})
}

func TestMiddleware_RateLimited(t *testing.T) {
	m := New(log.NewNop(), Config{
		Credentials:     map[string]string{"key": "s3cr3t"},
		NonceTTL:        time.Minute,
		RateLimitPerMin: 1,
		Prefix:          "/back/",
	})
	r := newTestEngine(m)
	now := time.Now()

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		nonce := signature.Nonce(now.Add(time.Duration(i) * time.Millisecond))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedRequest(http.MethodPost, "/back/calcemb", "calcemb", nonce, "s3cr3t"))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
