package infrabed

import "encoding/json"

// EmbeddingResult is the service payload, passed through as received:
// a vector for one sentence, a list of vectors for many.
type EmbeddingResult json.RawMessage

// Decode unmarshals the payload into v.
func (r EmbeddingResult) Decode(v any) error {
	return json.Unmarshal(r, v)
}

// Vector decodes a single-sentence payload.
func (r EmbeddingResult) Vector() ([]float64, error) {
	var v []float64
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Vectors decodes a batch payload.
func (r EmbeddingResult) Vectors() ([][]float64, error) {
	var v [][]float64
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r EmbeddingResult) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r EmbeddingResult) String() string {
	return string(r)
}

type inputKind int

const (
	inputNone inputKind = iota
	inputSentence
	inputSentences
)

// Input is either one sentence or a list of sentences. Build it with
// Sentence or Sentences; the zero value is rejected.
type Input struct {
	kind      inputKind
	sentence  string
	sentences []string
}

// Sentence wraps a single sentence.
func Sentence(s string) Input {
	return Input{kind: inputSentence, sentence: s}
}

// Sentences wraps a batch of sentences.
func Sentences(ss ...string) Input {
	if ss == nil {
		ss = []string{}
	}
	return Input{kind: inputSentences, sentences: ss}
}

// IsBatch reports whether in holds a list of sentences.
func (in Input) IsBatch() bool {
	return in.kind == inputSentences
}
