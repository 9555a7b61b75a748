package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"infrabed/internal/embedding"
	"infrabed/pkg/log"
)

type stubUseCase struct {
	oneInput  embedding.EmbedOneInput
	manyInput embedding.EmbedManyInput
	err       error
}

func (s *stubUseCase) EmbedOne(_ context.Context, in embedding.EmbedOneInput) (embedding.EmbedOneOutput, error) {
	s.oneInput = in
	if s.err != nil {
		return embedding.EmbedOneOutput{}, s.err
	}
	return embedding.EmbedOneOutput{Model: "m", Vector: embedding.Vector{0.6, -0.8}}, nil
}

func (s *stubUseCase) EmbedMany(_ context.Context, in embedding.EmbedManyInput) (embedding.EmbedManyOutput, error) {
	s.manyInput = in
	if s.err != nil {
		return embedding.EmbedManyOutput{}, s.err
	}
	vs := make([]embedding.Vector, len(in.Sentences))
	for i := range vs {
		vs[i] = embedding.Vector{float64(i)}
	}
	return embedding.EmbedManyOutput{Model: "m", Vectors: vs}, nil
}

func (s *stubUseCase) Models() []embedding.Model {
	return []embedding.Model{{ID: "m", Dimensions: 2}}
}

func newTestRouter(uc embedding.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.POST("/calcemb", h.EmbedOne)
	r.POST("/calcembm", h.EmbedMany)
	r.GET("/models", h.Models)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_EmbedOne(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/calcemb", `{"sentence":"hi","model_id":null}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[0.6,-0.8]`, w.Body.String())
		assert.Equal(t, "hi", uc.oneInput.Sentence)
		assert.Nil(t, uc.oneInput.ModelID)
	})

	t.Run("Model Passed Through", func(t *testing.T) {
		uc := &stubUseCase{}
		do(newTestRouter(uc), http.MethodPost, "/calcemb", `{"sentence":"hi","model_id":"alt"}`)

		if assert.NotNil(t, uc.oneInput.ModelID) {
			assert.Equal(t, "alt", *uc.oneInput.ModelID)
		}
	})

	t.Run("Missing Sentence", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/calcemb", `{"model_id":null}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"detail":[{"loc":["body","sentence"],"msg":"field required"}]}`, w.Body.String())
	})

	t.Run("Malformed Body", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/calcemb", `{`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Model Not Found", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: embedding.ErrModelNotFound}), http.MethodPost, "/calcemb", `{"sentence":"hi","model_id":"x"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, `{"detail":"Model not found"}`, w.Body.String())
	})

	t.Run("Empty Sentence", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: embedding.ErrEmptySentence}), http.MethodPost, "/calcemb", `{"sentence":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Cancelled", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{err: context.Canceled}), http.MethodPost, "/calcemb", `{"sentence":"hi"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandler_EmbedMany(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &stubUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/calcembm", `{"sentences":["a","b"],"model_id":null}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[[0],[1]]`, w.Body.String())
		assert.Equal(t, []string{"a", "b"}, uc.manyInput.Sentences)
	})

	t.Run("Empty Batch", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/calcembm", `{"sentences":[],"model_id":null}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[]`, w.Body.String())
	})

	t.Run("Missing Sentences", func(t *testing.T) {
		w := do(newTestRouter(&stubUseCase{}), http.MethodPost, "/calcembm", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"sentences"`)
	})
}

func TestHandler_Models(t *testing.T) {
	w := do(newTestRouter(&stubUseCase{}), http.MethodGet, "/models", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"id":"m","dimensions":2}]`, w.Body.String())
}
