package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infrabed/internal/embedding"
	"infrabed/internal/embedding/usecase"
	"infrabed/pkg/log"
)

func strPtr(s string) *string { return &s }

func newUseCase() embedding.UseCase {
	return usecase.New(log.NewNop(), usecase.Config{
		Models:       []string{"hashed-bow-384", "alt"},
		DefaultModel: "hashed-bow-384",
		Dimensions:   16,
	})
}

func l2(v embedding.Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestEmbedOne(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	t.Run("Default Model", func(t *testing.T) {
		out, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "Hello world"})
		require.NoError(t, err)
		assert.Equal(t, "hashed-bow-384", out.Model)
		assert.Len(t, out.Vector, 16)
		assert.InDelta(t, 1.0, l2(out.Vector), 1e-9)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "the quick brown fox"})
		require.NoError(t, err)
		b, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "The  quick, brown fox!"})
		require.NoError(t, err)
		assert.Equal(t, a.Vector, b.Vector)
	})

	t.Run("Model Changes Vector", func(t *testing.T) {
		a, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "a b c d e f g h"})
		require.NoError(t, err)
		b, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "a b c d e f g h", ModelID: strPtr("alt")})
		require.NoError(t, err)
		assert.Equal(t, "alt", b.Model)
		assert.NotEqual(t, a.Vector, b.Vector)
	})

	t.Run("Unknown Model", func(t *testing.T) {
		_, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "hi", ModelID: strPtr("nope")})
		assert.ErrorIs(t, err, embedding.ErrModelNotFound)
	})

	t.Run("Empty Sentence", func(t *testing.T) {
		_, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "   "})
		assert.ErrorIs(t, err, embedding.ErrEmptySentence)
	})

	t.Run("Punctuation Only", func(t *testing.T) {
		out, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "?!"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, l2(out.Vector))
	})
}

func TestEmbedMany(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	t.Run("Order Preserved", func(t *testing.T) {
		out, err := uc.EmbedMany(ctx, embedding.EmbedManyInput{Sentences: []string{"first one", "second one"}})
		require.NoError(t, err)
		require.Len(t, out.Vectors, 2)

		first, err := uc.EmbedOne(ctx, embedding.EmbedOneInput{Sentence: "first one"})
		require.NoError(t, err)
		assert.Equal(t, first.Vector, out.Vectors[0])
	})

	t.Run("Empty Batch", func(t *testing.T) {
		out, err := uc.EmbedMany(ctx, embedding.EmbedManyInput{Sentences: []string{}})
		require.NoError(t, err)
		assert.NotNil(t, out.Vectors)
		assert.Empty(t, out.Vectors)
	})

	t.Run("Empty Sentence In Batch", func(t *testing.T) {
		_, err := uc.EmbedMany(ctx, embedding.EmbedManyInput{Sentences: []string{"ok", ""}})
		assert.True(t, errors.Is(err, embedding.ErrEmptySentence))
		assert.Contains(t, err.Error(), "sentence 1")
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := uc.EmbedMany(cctx, embedding.EmbedManyInput{Sentences: []string{"a"}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestModels(t *testing.T) {
	uc := usecase.New(log.NewNop(), usecase.Config{
		Models:       []string{"alt", "base", "alt"},
		DefaultModel: "base",
		Dimensions:   8,
	})

	assert.Equal(t, []embedding.Model{
		{ID: "base", Dimensions: 8},
		{ID: "alt", Dimensions: 8},
	}, uc.Models())
}
