package http

import (
	"github.com/gin-gonic/gin"

	"infrabed/pkg/response"
)

// EmbedOne godoc
// @Summary     Embed one sentence
// @Description Returns the embedding vector of a single sentence.
// @Tags        Embedding
// @Accept      json
// @Produce     json
// @Param       nonce    header string      true "Milliseconds since the epoch"
// @Param       API-KEY  header string      true "API key"
// @Param       API-SIGN header string      true "Base64 HMAC-SHA256 signature"
// @Param       body     body   embedOneReq true "Sentence and optional model"
// @Success     200 {array}  number
// @Failure     401 {object} response.ErrorResp "Invalid API key or signature"
// @Failure     404 {object} response.ErrorResp "Model not found"
// @Failure     422 {object} response.ErrorResp "Validation error"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Router      /back/calcemb [POST]
func (h *handler) EmbedOne(c *gin.Context) {
	ctx := c.Request.Context()

	req, fields := h.processEmbedOneReq(c)
	if len(fields) > 0 {
		response.ValidationError(c, fields)
		return
	}

	output, err := h.uc.EmbedOne(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EmbedOne: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newVectorResp(output))
}

// EmbedMany godoc
// @Summary     Embed many sentences
// @Description Returns one embedding vector per sentence, in input order.
// @Tags        Embedding
// @Accept      json
// @Produce     json
// @Param       nonce    header string       true "Milliseconds since the epoch"
// @Param       API-KEY  header string       true "API key"
// @Param       API-SIGN header string       true "Base64 HMAC-SHA256 signature"
// @Param       body     body   embedManyReq true "Sentences and optional model"
// @Success     200 {array}  array
// @Failure     401 {object} response.ErrorResp "Invalid API key or signature"
// @Failure     404 {object} response.ErrorResp "Model not found"
// @Failure     422 {object} response.ErrorResp "Validation error"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Router      /back/calcembm [POST]
func (h *handler) EmbedMany(c *gin.Context) {
	ctx := c.Request.Context()

	req, fields := h.processEmbedManyReq(c)
	if len(fields) > 0 {
		response.ValidationError(c, fields)
		return
	}

	output, err := h.uc.EmbedMany(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EmbedMany: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newVectorsResp(output))
}

// Models godoc
// @Summary     List models
// @Description Lists the models this service can embed with.
// @Tags        Embedding
// @Produce     json
// @Param       nonce    header string true "Milliseconds since the epoch"
// @Param       API-KEY  header string true "API key"
// @Param       API-SIGN header string true "Base64 HMAC-SHA256 signature"
// @Success     200 {array}  modelResp
// @Failure     401 {object} response.ErrorResp "Invalid API key or signature"
// @Router      /back/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, newModelsResp(h.uc.Models()))
}
