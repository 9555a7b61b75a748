package embedding

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	EmbedOne(ctx context.Context, input EmbedOneInput) (EmbedOneOutput, error)
	EmbedMany(ctx context.Context, input EmbedManyInput) (EmbedManyOutput, error)
	Models() []Model
}
