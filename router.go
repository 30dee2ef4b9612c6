package deptbrain

import "context"

// Ensure Router implements Answerer.
var _ Answerer = (*Router)(nil)

// Router runs the answer pipeline: guardrails first, then structured lookup,
// then retrieval plus grounded generation. The first stage to produce a
// terminal outcome wins and later stages never run.
type Router struct {
	classifier *Classifier
	lookup     Lookup
	retrieval  *Retrieval
	generator  *Generator

	allowOffTopic bool
	topK          int
	maxDistance   float64
}

// NewRouter wires the pipeline stages together.
func NewRouter(classifier *Classifier, lookup Lookup, retrieval *Retrieval, generator *Generator, cfg Config) *Router {
	return &Router{
		classifier:    classifier,
		lookup:        lookup,
		retrieval:     retrieval,
		generator:     generator,
		allowOffTopic: cfg.AllowOffTopic,
		topK:          cfg.TopK,
		maxDistance:   cfg.MaxRAGDistance,
	}
}

// Answer routes the question. Guardrail refusals and insufficient-evidence
// outcomes are answers, not errors; only capability failures on the RAG path
// return an error.
func (r *Router) Answer(ctx context.Context, question string) (*Answer, error) {
	if r.classifier.IsAbusive(question) {
		return &Answer{Text: AbusiveMessage, Route: RouteGuardrailAbuse, Sources: []Source{}}, nil
	}

	if !r.allowOffTopic && !r.classifier.IsDomainQuestion(question) {
		return &Answer{Text: OffTopicMessage, Route: RouteGuardrailDomain, Sources: []Source{}}, nil
	}

	if answer, ok := r.lookup.Answer(question); ok {
		return answer, nil
	}

	sources, err := r.retrieval.Retrieve(ctx, question, r.topK)
	if err != nil {
		return nil, err
	}
	if !HasRelevantContext(sources, r.maxDistance) {
		return &Answer{Text: UnknownMessage, Route: RouteRAG, Sources: emptyIfNil(sources)}, nil
	}

	text, err := r.generator.Generate(ctx, question, sources)
	if err != nil {
		return nil, err
	}
	return &Answer{Text: text, Route: RouteRAG, Sources: sources}, nil
}

func emptyIfNil(sources []Source) []Source {
	if sources == nil {
		return []Source{}
	}
	return sources
}
