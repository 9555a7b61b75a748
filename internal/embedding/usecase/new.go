package usecase

import (
	"infrabed/internal/embedding"
	"infrabed/pkg/log"
)

// Config selects the models this instance serves.
type Config struct {
	Models       []string
	DefaultModel string
	Dimensions   int
}

// implUseCase is the private implementation of embedding.UseCase.
type implUseCase struct {
	l            log.Logger
	models       map[string]struct{}
	order        []string
	defaultModel string
	dims         int
}

// New creates a new embedding UseCase implementation. The default model is
// always served, even when it is missing from cfg.Models.
func New(l log.Logger, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:            l,
		models:       make(map[string]struct{}, len(cfg.Models)+1),
		defaultModel: cfg.DefaultModel,
		dims:         cfg.Dimensions,
	}
	for _, m := range append([]string{cfg.DefaultModel}, cfg.Models...) {
		if _, ok := uc.models[m]; m == "" || ok {
			continue
		}
		uc.models[m] = struct{}{}
		uc.order = append(uc.order, m)
	}
	return uc
}

var _ embedding.UseCase = (*implUseCase)(nil)
