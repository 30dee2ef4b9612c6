package mock

import (
	"context"

	"github.com/fwojciec/deptbrain"
)

var _ deptbrain.EmbeddingProvider = (*EmbeddingProvider)(nil)

// EmbeddingProvider is a mock implementation of deptbrain.EmbeddingProvider.
type EmbeddingProvider struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (p *EmbeddingProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return p.EmbedFn(ctx, texts)
}

var _ deptbrain.GenerationProvider = (*GenerationProvider)(nil)

// GenerationProvider is a mock implementation of deptbrain.GenerationProvider.
type GenerationProvider struct {
	GenerateFn func(ctx context.Context, system, user string) (string, error)
}

func (p *GenerationProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return p.GenerateFn(ctx, system, user)
}
