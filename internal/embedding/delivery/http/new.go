package http

import (
	"github.com/gin-gonic/gin"

	"infrabed/internal/embedding"
	"infrabed/pkg/log"
)

// Handler is the public interface for the embedding HTTP delivery layer.
type Handler interface {
	EmbedOne(c *gin.Context)
	EmbedMany(c *gin.Context)
	Models(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc embedding.UseCase
}

// New creates a new HTTP handler for the embedding domain.
func New(l log.Logger, uc embedding.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
