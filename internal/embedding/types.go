package embedding

// Vector is one sentence embedding.
type Vector []float64

// --- UseCase Inputs ---

// EmbedOneInput embeds a single sentence. A nil ModelID selects the
// default model.
type EmbedOneInput struct {
	Sentence string
	ModelID  *string
}

type EmbedManyInput struct {
	Sentences []string
	ModelID   *string
}

// --- UseCase Outputs ---

type EmbedOneOutput struct {
	Model  string
	Vector Vector
}

type EmbedManyOutput struct {
	Model   string
	Vectors []Vector
}

// Model describes an embedding model served by this instance.
type Model struct {
	ID         string
	Dimensions int
}
