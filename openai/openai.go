// Package openai implements the embedding and generation providers using
// the OpenAI API through langchaingo.
package openai

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/fwojciec/deptbrain"
)

// Ensure Provider implements both provider interfaces at compile time.
var (
	_ deptbrain.EmbeddingProvider  = (*Provider)(nil)
	_ deptbrain.GenerationProvider = (*Provider)(nil)
)

// Provider implements deptbrain.EmbeddingProvider and
// deptbrain.GenerationProvider using OpenAI.
type Provider struct {
	llm      *lcopenai.LLM
	embedder embeddings.Embedder
}

// NewProvider creates a new Provider from an API key and model names.
func NewProvider(apiKey, model, embeddingModel string) (*Provider, error) {
	llm, err := lcopenai.New(
		lcopenai.WithToken(apiKey),
		lcopenai.WithModel(model),
		lcopenai.WithEmbeddingModel(embeddingModel),
	)
	if err != nil {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "create openai client: %v", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "create openai embedder: %v", err)
	}

	return &Provider{llm: llm, embedder: embedder}, nil
}

// Generate produces a completion constrained by the system instruction.
func (p *Provider) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := p.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(deptbrain.GenerationTemperature),
		llms.WithMaxTokens(deptbrain.GenerationMaxTokens),
	)
	if err != nil {
		return "", deptbrain.Errorf(deptbrain.EPROVIDER, "openai generation failed: %v", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", deptbrain.Errorf(deptbrain.EPROVIDER, "openai returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// Embed returns one vector per text, in input order. langchaingo batches
// large inputs internally.
func (p *Provider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors, err := p.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "openai embedding failed: %v", err)
	}
	if len(vectors) != len(texts) {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "openai returned %d embeddings for %d texts", len(vectors), len(texts))
	}

	return vectors, nil
}
