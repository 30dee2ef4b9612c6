package deptbrain

import "context"

// EmbeddingProvider produces vector embeddings for texts. Implementations
// return exactly one vector per input text, in input order.
type EmbeddingProvider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// GenerationProvider produces a completion from a system instruction and a
// user prompt. Request shaping is provider-specific and stays behind this
// interface.
type GenerationProvider interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
