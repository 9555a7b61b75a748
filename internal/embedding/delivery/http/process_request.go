package http

import (
	"github.com/gin-gonic/gin"

	"infrabed/pkg/response"
)

// processEmbedOneReq binds and validates the single-sentence request body.
func (h *handler) processEmbedOneReq(c *gin.Context) (embedOneReq, []response.FieldError) {
	var req embedOneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []response.FieldError{{Loc: []string{"body"}, Msg: err.Error()}}
	}
	return req, req.validate()
}

// processEmbedManyReq binds and validates the batch request body.
func (h *handler) processEmbedManyReq(c *gin.Context) (embedManyReq, []response.FieldError) {
	var req embedManyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, []response.FieldError{{Loc: []string{"body"}, Msg: err.Error()}}
	}
	return req, req.validate()
}
