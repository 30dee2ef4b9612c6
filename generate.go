package deptbrain

import (
	"context"
	"fmt"
	"strings"
)

// Generation settings shared by every provider. Temperature zero and a small
// token cap keep grounded answers deterministic and brief.
const (
	GenerationTemperature = 0.0
	GenerationMaxTokens   = 180
)

// SystemPrompt constrains the model to the supplied context and pins the
// exact fallback sentence for missing answers.
const SystemPrompt = "You are a department assistant. Answer ONLY from provided context. " +
	"Do not guess or add details not present in the context. " +
	"If answer is not in context, say: " + UnknownMessage +
	" Keep answer brief, factual, and polite."

// BuildUserPrompt numbers the evidence blocks and appends the question.
func BuildUserPrompt(question string, sources []Source) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	for i, s := range sources {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%d] %s", i+1, s.Text)
	}
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}

// Generator produces grounded answers through the configured provider. A nil
// provider means no credential is present: Generate then returns the fixed
// unknown message without any network call.
type Generator struct {
	provider GenerationProvider
}

// NewGenerator creates a Generator. The provider may be nil.
func NewGenerator(provider GenerationProvider) *Generator {
	return &Generator{provider: provider}
}

// Configured reports whether a generation provider is wired in.
func (g *Generator) Configured() bool {
	return g.provider != nil
}

// Generate answers the question from the given sources only. A provider
// response with no usable text degrades to the fixed unknown message.
func (g *Generator) Generate(ctx context.Context, question string, sources []Source) (string, error) {
	if g.provider == nil {
		return UnknownMessage, nil
	}

	text, err := g.provider.Generate(ctx, SystemPrompt, BuildUserPrompt(question, sources))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return UnknownMessage, nil
	}
	return text, nil
}
