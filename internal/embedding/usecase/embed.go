package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"

	"infrabed/internal/embedding"
)

// EmbedOne returns the vector of a single sentence.
func (uc *implUseCase) EmbedOne(ctx context.Context, input embedding.EmbedOneInput) (embedding.EmbedOneOutput, error) {
	model, err := uc.resolveModel(input.ModelID)
	if err != nil {
		return embedding.EmbedOneOutput{}, err
	}

	vec, err := uc.embed(model, input.Sentence)
	if err != nil {
		return embedding.EmbedOneOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.EmbedOne: model=%s tokens=%d", model, len(tokenize(input.Sentence)))
	return embedding.EmbedOneOutput{Model: model, Vector: vec}, nil
}

// EmbedMany returns one vector per sentence, in input order.
func (uc *implUseCase) EmbedMany(ctx context.Context, input embedding.EmbedManyInput) (embedding.EmbedManyOutput, error) {
	model, err := uc.resolveModel(input.ModelID)
	if err != nil {
		return embedding.EmbedManyOutput{}, err
	}

	vectors := make([]embedding.Vector, 0, len(input.Sentences))
	for i, s := range input.Sentences {
		if err := ctx.Err(); err != nil {
			return embedding.EmbedManyOutput{}, err
		}
		vec, err := uc.embed(model, s)
		if err != nil {
			return embedding.EmbedManyOutput{}, fmt.Errorf("sentence %d: %w", i, err)
		}
		vectors = append(vectors, vec)
	}

	uc.l.Debugf(ctx, "uc.EmbedMany: model=%s sentences=%d", model, len(vectors))
	return embedding.EmbedManyOutput{Model: model, Vectors: vectors}, nil
}

// Models lists the served models, default first.
func (uc *implUseCase) Models() []embedding.Model {
	out := make([]embedding.Model, len(uc.order))
	for i, id := range uc.order {
		out[i] = embedding.Model{ID: id, Dimensions: uc.dims}
	}
	return out
}

func (uc *implUseCase) resolveModel(id *string) (string, error) {
	if id == nil {
		return uc.defaultModel, nil
	}
	if _, ok := uc.models[*id]; !ok {
		return "", embedding.ErrModelNotFound
	}
	return *id, nil
}

// embed hashes each token into one of dims buckets with a hash-derived
// sign, then L2-normalizes. The model id seeds the hash so different
// models give different vectors for the same sentence.
func (uc *implUseCase) embed(model, sentence string) (embedding.Vector, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, embedding.ErrEmptySentence
	}

	vec := make(embedding.Vector, uc.dims)
	d := xxhash.New()
	for _, tok := range tokenize(sentence) {
		d.Reset()
		_, _ = d.WriteString(model)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(tok)
		h := d.Sum64()

		idx := h % uint64(uc.dims)
		if h>>63 == 1 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
