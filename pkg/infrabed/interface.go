package infrabed

import (
	"context"
	"encoding/json"

	"infrabed/pkg/signature"
)

// IClient defines the embedding service client.
// Implementations are not safe for concurrent use; give each caller its own.
type IClient interface {
	Call(ctx context.Context, method signature.Method, path string, signed bool, data *signature.Params) (json.RawMessage, error)
	EmbedOne(ctx context.Context, sentence, modelID string) (EmbeddingResult, error)
	EmbedMany(ctx context.Context, sentences []string, modelID string) (EmbeddingResult, error)
	GetEmbeddings(ctx context.Context, input Input, modelID string) (EmbeddingResult, error)
	Close()
}

var _ IClient = (*Client)(nil)
