package http

import (
	"infrabed/internal/embedding"
	"infrabed/pkg/response"
)

// --- Request DTOs ---

type embedOneReq struct {
	Sentence *string `json:"sentence"`
	ModelID  *string `json:"model_id"`
}

func (r embedOneReq) validate() []response.FieldError {
	if r.Sentence == nil {
		return []response.FieldError{fieldRequired("sentence")}
	}
	return nil
}

func (r embedOneReq) toInput() embedding.EmbedOneInput {
	return embedding.EmbedOneInput{
		Sentence: *r.Sentence,
		ModelID:  r.ModelID,
	}
}

// ---

type embedManyReq struct {
	Sentences *[]string `json:"sentences"`
	ModelID   *string   `json:"model_id"`
}

func (r embedManyReq) validate() []response.FieldError {
	if r.Sentences == nil {
		return []response.FieldError{fieldRequired("sentences")}
	}
	return nil
}

func (r embedManyReq) toInput() embedding.EmbedManyInput {
	return embedding.EmbedManyInput{
		Sentences: *r.Sentences,
		ModelID:   r.ModelID,
	}
}

func fieldRequired(name string) response.FieldError {
	return response.FieldError{Loc: []string{"body", name}, Msg: "field required"}
}

// --- Response DTOs ---

// vectorResp is a single embedding, serialized as a bare JSON array.
type vectorResp []float64

func newVectorResp(out embedding.EmbedOneOutput) vectorResp {
	return vectorResp(out.Vector)
}

func newVectorsResp(out embedding.EmbedManyOutput) []vectorResp {
	vs := make([]vectorResp, len(out.Vectors))
	for i, v := range out.Vectors {
		vs[i] = vectorResp(v)
	}
	return vs
}

type modelResp struct {
	ID         string `json:"id"`
	Dimensions int    `json:"dimensions"`
}

func newModelsResp(models []embedding.Model) []modelResp {
	out := make([]modelResp, len(models))
	for i, m := range models {
		out[i] = modelResp{ID: m.ID, Dimensions: m.Dimensions}
	}
	return out
}
