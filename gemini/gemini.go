// Package gemini implements the embedding and generation providers using
// Google Gemini.
package gemini

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/fwojciec/deptbrain"
)

// Embedding batch limits. The API accepts at most 100 texts per request.
const (
	embedBatchSize   = 100
	embedConcurrency = 4
)

// Ensure Provider implements both provider interfaces at compile time.
var (
	_ deptbrain.EmbeddingProvider  = (*Provider)(nil)
	_ deptbrain.GenerationProvider = (*Provider)(nil)
)

// Provider implements deptbrain.EmbeddingProvider and
// deptbrain.GenerationProvider using Google Gemini.
type Provider struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

// NewProvider creates a new Provider.
func NewProvider(client *genai.Client, model, embeddingModel string) *Provider {
	return &Provider{client: client, model: model, embeddingModel: embeddingModel}
}

// Generate produces a completion constrained by the system instruction.
func (p *Provider) Generate(ctx context.Context, system, user string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: user}},
		}},
		BuildGenerateConfig(system),
	)
	if err != nil {
		return "", deptbrain.Errorf(deptbrain.EPROVIDER, "gemini generation failed: %v", err)
	}
	if result == nil {
		return "", deptbrain.Errorf(deptbrain.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// Embed returns one vector per text, in input order. Inputs larger than one
// batch are embedded concurrently.
func (p *Provider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)

	for start := 0; start < len(texts); start += embedBatchSize {
		start := start
		end := min(start+embedBatchSize, len(texts))
		g.Go(func() error {
			batch, err := p.embedBatch(gctx, texts[start:end])
			if err != nil {
				return err
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vectors, nil
}

func (p *Provider) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{Parts: []*genai.Part{{Text: text}}}
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.embeddingModel, contents, nil)
	if err != nil {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "gemini embedding failed: %v", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "gemini returned %d embeddings for %d texts", embeddingCount(resp), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, deptbrain.Errorf(deptbrain.EPROVIDER, "gemini returned an empty embedding")
		}
		vectors[i] = e.Values
	}
	return vectors, nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}

// BuildGenerateConfig pins deterministic, capped output under the given
// system instruction.
func BuildGenerateConfig(system string) *genai.GenerateContentConfig {
	temp := float32(deptbrain.GenerationTemperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature:     &temp,
		MaxOutputTokens: deptbrain.GenerationMaxTokens,
	}
}
