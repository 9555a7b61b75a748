package infrabed

import (
	"context"

	"infrabed/pkg/signature"
)

// EmbedOne embeds a single sentence. An empty modelID lets the service
// pick its default model.
func (c *Client) EmbedOne(ctx context.Context, sentence, modelID string) (EmbeddingResult, error) {
	data := signature.NewParams().
		Set("sentence", sentence).
		Set("model_id", modelValue(modelID))

	raw, err := c.Post(ctx, PathEmbedOne, true, data)
	if err != nil {
		return nil, err
	}
	return EmbeddingResult(raw), nil
}

// EmbedMany embeds a batch of sentences in one request.
func (c *Client) EmbedMany(ctx context.Context, sentences []string, modelID string) (EmbeddingResult, error) {
	if sentences == nil {
		sentences = []string{}
	}
	data := signature.NewParams().
		Set("sentences", sentences).
		Set("model_id", modelValue(modelID))

	raw, err := c.Post(ctx, PathEmbedMany, true, data)
	if err != nil {
		return nil, err
	}
	return EmbeddingResult(raw), nil
}

// GetEmbeddings routes a single sentence to EmbedOne and a batch to EmbedMany.
func (c *Client) GetEmbeddings(ctx context.Context, input Input, modelID string) (EmbeddingResult, error) {
	switch input.kind {
	case inputSentence:
		return c.EmbedOne(ctx, input.sentence, modelID)
	case inputSentences:
		return c.EmbedMany(ctx, input.sentences, modelID)
	default:
		return nil, ErrInvalidInput
	}
}

// modelValue maps "" to JSON null.
func modelValue(modelID string) any {
	if modelID == "" {
		return nil
	}
	return modelID
}
