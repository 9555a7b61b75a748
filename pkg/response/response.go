package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error aborts with status and {"detail": detail}.
func Error(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResp{Detail: detail})
}

// ValidationError sends 422 with per-field details.
func ValidationError(c *gin.Context, fields []FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResp{Detail: fields})
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Detail: DefaultErrorMessage})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, detail string) {
	if detail == "" {
		detail = UnauthorizedMessage
	}
	Error(c, http.StatusUnauthorized, detail)
}

// NotFound sends 404.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context, detail string) {
	Error(c, http.StatusTooManyRequests, detail)
}
